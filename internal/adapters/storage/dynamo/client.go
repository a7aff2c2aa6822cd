// Package dynamo guarda animals y rooms en DynamoDB. La relación animal→room se consulta
// con índices secundarios globales cuyas claves de orden se derivan al escribir.
package dynamo

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const (
	TitleIndex       = "title-index"
	RoomTitleIndex   = "room-title-index"
	RoomLocatedIndex = "room-located-index"
)

type Config struct {
	Endpoint              string // opcional (DynamoDB Local)
	Region                string
	AccessKey             string
	SecretKey             string
	UseDefaultCredentials bool

	AnimalsTable   string
	RoomsTable     string
	ConsistentRead bool
}

func (c Config) withDefaults() Config {
	if c.Region == "" {
		c.Region = "us-west-2"
	}
	if c.AnimalsTable == "" {
		c.AnimalsTable = "animals"
	}
	if c.RoomsTable == "" {
		c.RoomsTable = "rooms"
	}
	return c
}

// NewClient arma el cliente. Con UseDefaultCredentials usa la cadena estándar de AWS
// (rol IAM, variables de entorno...); si no, las claves explícitas cuando vienen.
func NewClient(ctx context.Context, cfg Config) (*dynamodb.Client, error) {
	cfg = cfg.withDefaults()

	loadOpts := []func(*config.LoadOptions) error{config.WithRegion(cfg.Region)}
	if !cfg.UseDefaultCredentials && strings.TrimSpace(cfg.AccessKey) != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	}), nil
}
