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

	"zoo-rooms/internal/domain/animals"
)

// maxQueryPage es el tope de items por request a DynamoDB en las consultas acotadas.
const maxQueryPage = 1000

type AnimalsRepo struct {
	client         *dynamodb.Client
	table          string
	consistentRead bool
}

func NewAnimalsRepo(client *dynamodb.Client, cfg Config) *AnimalsRepo {
	cfg = cfg.withDefaults()
	return &AnimalsRepo{client: client, table: cfg.AnimalsTable, consistentRead: cfg.ConsistentRead}
}

func (r *AnimalsRepo) Create(ctx context.Context, a animals.Animal) error {
	return r.put(ctx, a, "attribute_not_exists(#id)", errors.New("animal already exists"))
}

// Update es last-write-wins; solo exige que el item exista.
func (r *AnimalsRepo) Update(ctx context.Context, a animals.Animal) error {
	return r.put(ctx, a, "attribute_exists(#id)", animals.ErrNotFound)
}

func (r *AnimalsRepo) put(ctx context.Context, a animals.Animal, condition string, onConflict error) error {
	item, err := attributevalue.MarshalMap(toAnimalItem(a))
	if err != nil {
		return fmt.Errorf("marshal animal: %w", err)
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

func (r *AnimalsRepo) GetByID(ctx context.Context, id string) (animals.Animal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return animals.Animal{}, animals.ErrNotFound
	}

	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.table),
		Key:            map[string]types.AttributeValue{attrID: &types.AttributeValueMemberS{Value: id}},
		ConsistentRead: aws.Bool(r.consistentRead),
	})
	if err != nil {
		return animals.Animal{}, err
	}
	if len(out.Item) == 0 {
		return animals.Animal{}, animals.ErrNotFound
	}

	var it animalItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return animals.Animal{}, fmt.Errorf("unmarshal animal: %w", err)
	}
	return it.toAnimal()
}

func (r *AnimalsRepo) Delete(ctx context.Context, id string) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.table),
		Key:       map[string]types.AttributeValue{attrID: &types.AttributeValueMemberS{Value: id}},
	})
	return err
}

// ListByRoom consulta el índice por room cuyo sort key corresponde a ord.Field, en la
// dirección pedida, y deja de paginar apenas junta limit items.
func (r *AnimalsRepo) ListByRoom(ctx context.Context, roomID string, limit int, ord animals.Ordering) ([]animals.Animal, error) {
	if limit <= 0 {
		return []animals.Animal{}, nil
	}

	index := RoomTitleIndex
	if ord.Field == animals.SortByLocated {
		index = RoomLocatedIndex
	}

	p := dynamodb.NewQueryPaginator(r.client, &dynamodb.QueryInput{
		TableName:                 aws.String(r.table),
		IndexName:                 aws.String(index),
		KeyConditionExpression:    aws.String("#room = :room"),
		ExpressionAttributeNames:  map[string]string{"#room": attrRoomID},
		ExpressionAttributeValues: map[string]types.AttributeValue{":room": &types.AttributeValueMemberS{Value: roomID}},
		ScanIndexForward:          aws.Bool(ord.Order != animals.Desc),
		Limit:                     aws.Int32(int32(min(limit, maxQueryPage))),
	})

	out := make([]animals.Animal, 0, min(limit, maxQueryPage))
	for p.HasMorePages() && len(out) < limit {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		items, err := decodeAnimals(page.Items)
		if err != nil {
			return nil, err
		}
		out = append(out, items...)
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *AnimalsRepo) ListByTitle(ctx context.Context, title string) ([]animals.Animal, error) {
	p := dynamodb.NewQueryPaginator(r.client, &dynamodb.QueryInput{
		TableName:                 aws.String(r.table),
		IndexName:                 aws.String(TitleIndex),
		KeyConditionExpression:    aws.String("#title = :title"),
		ExpressionAttributeNames:  map[string]string{"#title": attrTitle},
		ExpressionAttributeValues: map[string]types.AttributeValue{":title": &types.AttributeValueMemberS{Value: title}},
	})

	out := make([]animals.Animal, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		items, err := decodeAnimals(page.Items)
		if err != nil {
			return nil, err
		}
		out = append(out, items...)
	}
	return out, nil
}

// ScanFavorites recorre la tabla proyectando solo id y favoritos.
func (r *AnimalsRepo) ScanFavorites(ctx context.Context, fn func(string, []string) error) error {
	p := dynamodb.NewScanPaginator(r.client, &dynamodb.ScanInput{
		TableName:                aws.String(r.table),
		ProjectionExpression:     aws.String("#id, #fav"),
		ExpressionAttributeNames: map[string]string{"#id": attrID, "#fav": attrFavorites},
		ConsistentRead:           aws.Bool(r.consistentRead),
	})

	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return err
		}
		for _, raw := range page.Items {
			var it struct {
				ID        string   `dynamodbav:"id"`
				Favorites []string `dynamodbav:"favoriteRoomIds,stringset"`
			}
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return fmt.Errorf("unmarshal favorites: %w", err)
			}
			if err := fn(it.ID, it.Favorites); err != nil {
				return err
			}
		}
	}
	return nil
}

func decodeAnimals(raw []map[string]types.AttributeValue) ([]animals.Animal, error) {
	var items []animalItem
	if err := attributevalue.UnmarshalListOfMaps(raw, &items); err != nil {
		return nil, fmt.Errorf("unmarshal animals: %w", err)
	}

	out := make([]animals.Animal, 0, len(items))
	for _, it := range items {
		a, err := it.toAnimal()
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}
