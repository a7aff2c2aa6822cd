package dynamo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

const tableWaitTimeout = 2 * time.Minute

// EnsureTables crea las tablas (e índices) que falten. Las existentes no se tocan.
func EnsureTables(ctx context.Context, client *dynamodb.Client, cfg Config, log *zap.Logger) error {
	cfg = cfg.withDefaults()

	for _, in := range []*dynamodb.CreateTableInput{
		animalsTableInput(cfg.AnimalsTable),
		roomsTableInput(cfg.RoomsTable),
	} {
		name := aws.ToString(in.TableName)

		_, err := client.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: in.TableName})
		if err == nil {
			log.Debug("dynamodb table exists", zap.String("table", name))
			continue
		}
		var notFound *types.ResourceNotFoundException
		if !errors.As(err, &notFound) {
			return fmt.Errorf("describe table %s: %w", name, err)
		}

		if _, err := client.CreateTable(ctx, in); err != nil {
			return fmt.Errorf("create table %s: %w", name, err)
		}
		waiter := dynamodb.NewTableExistsWaiter(client)
		if err := waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: in.TableName}, tableWaitTimeout); err != nil {
			return fmt.Errorf("wait for table %s: %w", name, err)
		}
		log.Info("dynamodb table created", zap.String("table", name))
	}
	return nil
}

func stringAttr(name string) types.AttributeDefinition {
	return types.AttributeDefinition{AttributeName: aws.String(name), AttributeType: types.ScalarAttributeTypeS}
}

func gsi(name, hash, rangeKey string) types.GlobalSecondaryIndex {
	keys := []types.KeySchemaElement{{AttributeName: aws.String(hash), KeyType: types.KeyTypeHash}}
	if rangeKey != "" {
		keys = append(keys, types.KeySchemaElement{AttributeName: aws.String(rangeKey), KeyType: types.KeyTypeRange})
	}
	return types.GlobalSecondaryIndex{
		IndexName:  aws.String(name),
		KeySchema:  keys,
		Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
	}
}

func animalsTableInput(table string) *dynamodb.CreateTableInput {
	return &dynamodb.CreateTableInput{
		TableName:   aws.String(table),
		BillingMode: types.BillingModePayPerRequest,
		AttributeDefinitions: []types.AttributeDefinition{
			stringAttr(attrID),
			stringAttr(attrTitle),
			stringAttr(attrRoomID),
			stringAttr(attrRoomTitleKey),
			stringAttr(attrRoomLocatedKey),
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String(attrID), KeyType: types.KeyTypeHash},
		},
		GlobalSecondaryIndexes: []types.GlobalSecondaryIndex{
			gsi(TitleIndex, attrTitle, ""),
			gsi(RoomTitleIndex, attrRoomID, attrRoomTitleKey),
			gsi(RoomLocatedIndex, attrRoomID, attrRoomLocatedKey),
		},
	}
}

func roomsTableInput(table string) *dynamodb.CreateTableInput {
	return &dynamodb.CreateTableInput{
		TableName:            aws.String(table),
		BillingMode:          types.BillingModePayPerRequest,
		AttributeDefinitions: []types.AttributeDefinition{stringAttr(attrID)},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String(attrID), KeyType: types.KeyTypeHash},
		},
	}
}
