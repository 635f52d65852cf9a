// Package datasetspb describes the datasets.Datasets gRPC service. Messages
// are protobuf well-known types, so the service descriptor is written by hand
// in the shape protoc-gen-go-grpc would emit.
package datasetspb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const ServiceName = "datasets.Datasets"

const (
	Datasets_Resolve_FullMethodName = "/datasets.Datasets/Resolve"
	Datasets_List_FullMethodName    = "/datasets.Datasets/List"
	Datasets_Stats_FullMethodName   = "/datasets.Datasets/Stats"
)

// DatasetsClient is the client API for the Datasets service.
type DatasetsClient interface {
	// Resolve returns the absolute path of the named example.
	Resolve(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
	// List returns the names of the bundled examples.
	List(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.ListValue, error)
	// Stats returns the hit and miss counters of the named example.
	Stats(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type datasetsClient struct {
	cc grpc.ClientConnInterface
}

func NewDatasetsClient(cc grpc.ClientConnInterface) DatasetsClient {
	return &datasetsClient{cc}
}

func (c *datasetsClient) Resolve(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	out := new(wrapperspb.StringValue)
	if err := c.cc.Invoke(ctx, Datasets_Resolve_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *datasetsClient) List(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	out := new(structpb.ListValue)
	if err := c.cc.Invoke(ctx, Datasets_List_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *datasetsClient) Stats(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, Datasets_Stats_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// DatasetsServer is the server API for the Datasets service. Implementations
// must embed UnimplementedDatasetsServer.
type DatasetsServer interface {
	Resolve(context.Context, *wrapperspb.StringValue) (*wrapperspb.StringValue, error)
	List(context.Context, *emptypb.Empty) (*structpb.ListValue, error)
	Stats(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
	mustEmbedUnimplementedDatasetsServer()
}

type UnimplementedDatasetsServer struct{}

func (UnimplementedDatasetsServer) Resolve(context.Context, *wrapperspb.StringValue) (*wrapperspb.StringValue, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Resolve not implemented")
}

func (UnimplementedDatasetsServer) List(context.Context, *emptypb.Empty) (*structpb.ListValue, error) {
	return nil, status.Errorf(codes.Unimplemented, "method List not implemented")
}

func (UnimplementedDatasetsServer) Stats(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Stats not implemented")
}

func (UnimplementedDatasetsServer) mustEmbedUnimplementedDatasetsServer() {}

func RegisterDatasetsServer(s grpc.ServiceRegistrar, srv DatasetsServer) {
	s.RegisterService(&Datasets_ServiceDesc, srv)
}

func _Datasets_Resolve_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DatasetsServer).Resolve(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Datasets_Resolve_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DatasetsServer).Resolve(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

func _Datasets_List_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DatasetsServer).List(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Datasets_List_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DatasetsServer).List(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _Datasets_Stats_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DatasetsServer).Stats(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Datasets_Stats_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DatasetsServer).Stats(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

var Datasets_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*DatasetsServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Resolve",
			Handler:    _Datasets_Resolve_Handler,
		},
		{
			MethodName: "List",
			Handler:    _Datasets_List_Handler,
		},
		{
			MethodName: "Stats",
			Handler:    _Datasets_Stats_Handler,
		},
	},
	Streams: []grpc.StreamDesc{},
}
