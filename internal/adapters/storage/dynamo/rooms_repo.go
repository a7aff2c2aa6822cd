package dynamo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"zoo-rooms/internal/domain/rooms"
)

type RoomsRepo struct {
	client         *dynamodb.Client
	table          string
	consistentRead bool
}

func NewRoomsRepo(client *dynamodb.Client, cfg Config) *RoomsRepo {
	cfg = cfg.withDefaults()
	return &RoomsRepo{client: client, table: cfg.RoomsTable, consistentRead: cfg.ConsistentRead}
}

func (r *RoomsRepo) Create(ctx context.Context, room rooms.Room) error {
	return r.put(ctx, room, "attribute_not_exists(#id)", errors.New("room already exists"))
}

func (r *RoomsRepo) Update(ctx context.Context, room rooms.Room) error {
	return r.put(ctx, room, "attribute_exists(#id)", rooms.ErrNotFound)
}

func (r *RoomsRepo) put(ctx context.Context, room rooms.Room, condition string, onConflict error) error {
	item, err := attributevalue.MarshalMap(toRoomItem(room))
	if err != nil {
		return fmt.Errorf("marshal room: %w", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.table),
		Item:                     item,
		ConditionExpression:      aws.String(condition),
		ExpressionAttributeNames: map[string]string{"#id": attrID},
	})
	var ccf *types.ConditionalCheckFailedException
	if errors.As(err, &ccf) {
		return onConflict
	}
	return err
}

func (r *RoomsRepo) GetByID(ctx context.Context, id string) (rooms.Room, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return rooms.Room{}, rooms.ErrNotFound
	}

	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.table),
		Key:            map[string]types.AttributeValue{attrID: &types.AttributeValueMemberS{Value: id}},
		ConsistentRead: aws.Bool(r.consistentRead),
	})
	if err != nil {
		return rooms.Room{}, err
	}
	if len(out.Item) == 0 {
		return rooms.Room{}, rooms.ErrNotFound
	}

	var it roomItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return rooms.Room{}, fmt.Errorf("unmarshal room: %w", err)
	}
	return it.toRoom()
}

func (r *RoomsRepo) Delete(ctx context.Context, id string) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.table),
		Key:       map[string]types.AttributeValue{attrID: &types.AttributeValueMemberS{Value: id}},
	})
	return err
}
