package database

import (
	"context"

	"painel_master/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// NewDynamoDBClient builds a client from the store settings. When
// DYNAMODB_ENDPOINT is set (e.g. http://dynamodb:8000) requests go to that
// endpoint instead of AWS.
func NewDynamoDBClient(ctx context.Context, st config.Store) (*dynamodb.Client, error) {
	cfg, err := newDynamoDBConfig(ctx, st)
	if err != nil {
		return nil, err
	}
	return dynamodb.NewFromConfig(cfg), nil
}

func newDynamoDBConfig(ctx context.Context, st config.Store) (aws.Config, error) {
	creds := credentials.NewStaticCredentialsProvider(st.AWSAccessKeyID, st.AWSSecretAccessKey, "")

	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(st.AWSRegion),
		awsconfig.WithCredentialsProvider(creds),
	}

	if endpoint := st.DynamoDBEndpoint; endpoint != "" {
		resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, _ ...interface{}) (aws.Endpoint, error) {
			if service == dynamodb.ServiceID {
				return aws.Endpoint{URL: endpoint, SigningRegion: region, HostnameImmutable: true}, nil
			}
			return aws.Endpoint{}, &aws.EndpointNotFoundError{}
		})
		loadOpts = append(loadOpts, awsconfig.WithEndpointResolverWithOptions(resolver))
	}

	return awsconfig.LoadDefaultConfig(ctx, loadOpts...)
}
