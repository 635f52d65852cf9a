package api

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	pb "github.com/frankonly/datasets/api/datasetspb"
	"github.com/frankonly/datasets/datasets"
	"github.com/frankonly/datasets/metrics"
	"github.com/frankonly/datasets/storage"
)

type Server struct {
	pb.UnimplementedDatasetsServer
	resolver *datasets.Resolver
	stats    *storage.LookupStats
	logger   *zap.SugaredLogger
}

func NewServer(resolver *datasets.Resolver, stats *storage.LookupStats, logger *zap.SugaredLogger) *Server {
	return &Server{resolver: resolver, stats: stats, logger: logger}
}

func (s *Server) Resolve(_ context.Context, name *wrapperspb.StringValue) (*wrapperspb.StringValue, error) {
	start := time.Now()
	path, err := s.resolver.Get(name.GetValue())
	metrics.LookupDuration.WithLabelValues("Resolve").Observe(time.Since(start).Seconds())

	switch {
	case errors.Is(err, datasets.ErrInvalidName):
		// invalid names are never recorded in stats
		metrics.LookupsTotal.WithLabelValues("Resolve", metrics.ResultInvalid).Inc()
		return nil, status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, datasets.ErrNotFound):
		s.observe(name.GetValue(), metrics.ResultMiss, false)
		return nil, status.Error(codes.NotFound, err.Error())
	case err != nil:
		metrics.LookupsTotal.WithLabelValues("Resolve", metrics.ResultError).Inc()
		s.logger.Errorw("failed to resolve example", "name", name.GetValue(), "error", err)
		return nil, status.Error(codes.Internal, err.Error())
	default:
		s.observe(name.GetValue(), metrics.ResultHit, true)
		return wrapperspb.String(path), nil
	}
}

func (s *Server) List(context.Context, *emptypb.Empty) (*structpb.ListValue, error) {
	names, err := s.resolver.Names()
	if err != nil {
		s.logger.Errorw("failed to list examples", "base", s.resolver.Base(), "error", err)
		return nil, status.Error(codes.Internal, err.Error())
	}

	values := make([]interface{}, 0, len(names))
	for _, name := range names {
		values = append(values, name)
	}

	list, err := structpb.NewList(values)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	return list, nil
}

func (s *Server) Stats(_ context.Context, name *wrapperspb.StringValue) (*structpb.Struct, error) {
	counts, err := s.stats.Get(name.GetValue())
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	result, err := structpb.NewStruct(map[string]interface{}{
		"hits":   counts.Hits,
		"misses": counts.Misses,
	})
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	return result, nil
}

// observe counts a lookup outcome. A failure to persist it is logged and does
// not fail the lookup.
func (s *Server) observe(name, result string, found bool) {
	metrics.LookupsTotal.WithLabelValues("Resolve", result).Inc()
	s.logger.Debugw("resolve", "name", name, "result", result)

	if err := s.stats.Record(name, found); err != nil {
		s.logger.Warnw("failed to record lookup", "name", name, "error", err)
	}
}
