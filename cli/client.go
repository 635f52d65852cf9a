package cli

import (
	"crypto/tls"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"

	pb "github.com/frankonly/datasets/api/datasetspb"
)

var apiClient pb.DatasetsClient

// Client news or returns a datasets client
func Client() (pb.DatasetsClient, error) {
	if apiClient != nil {
		return apiClient, nil
	}

	creds := insecure.NewCredentials()
	if secureConn {
		creds = credentials.NewTLS(&tls.Config{})
	}

	conn, err := grpc.Dial(endpoint, grpc.WithTransportCredentials(creds))
	if err != nil {
		return nil, fmt.Errorf("failed to connect with %s: %w", endpoint, err)
	}

	apiClient = pb.NewDatasetsClient(conn)
	return apiClient, nil
}
