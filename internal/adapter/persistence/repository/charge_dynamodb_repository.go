package repository

import (
	"context"
	"time"

	"meditrack_pro/internal/domain/entities"
	"meditrack_pro/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultChargesTableName = "charges"
	chargesRecordIDIndex    = "record_id-index"
)

type chargeItem struct {
	ID           string                 `dynamodbav:"id"`
	RecordID     string                 `dynamodbav:"record_id"`
	Amount       float64                `dynamodbav:"amount"`
	Date         string                 `dynamodbav:"date"`
	Status       string                 `dynamodbav:"status"`
	MPPayload    map[string]interface{} `dynamodbav:"mp_payload,omitempty"`
	MPPayloadRaw string                 `dynamodbav:"mp_payload_raw,omitempty"`
}

// ChargeDynamoRepository persists Charge entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: record_id-index (PK: record_id)

type ChargeDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IChargeRepository = (*ChargeDynamoRepository)(nil)

func NewChargeDynamoRepository(ddb *dynamodb.Client, tableName string) *ChargeDynamoRepository {
	return &ChargeDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultChargesTableName),
	}
}

func (r *ChargeDynamoRepository) Create(ctx context.Context, c entities.Charge) (entities.Charge, error) {
	av, err := attributevalue.MarshalMap(toChargeItem(c))
	if err != nil {
		return entities.Charge{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Charge{}, err
	}
	return c, nil
}

func (r *ChargeDynamoRepository) GetByID(ctx context.Context, id string) (entities.Charge, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Charge{}, err
	}
	if len(out.Item) == 0 {
		return entities.Charge{}, nil
	}

	var it chargeItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Charge{}, err
	}
	return fromChargeItem(it), nil
}

func (r *ChargeDynamoRepository) ListByRecordID(ctx context.Context, recordID string) ([]entities.Charge, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(chargesRecordIDIndex),
		KeyConditionExpression: aws.String("record_id = :rid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid": &types.AttributeValueMemberS{Value: recordID},
		},
	})

	items := make([]entities.Charge, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it chargeItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromChargeItem(it))
		}
	}
	return items, nil
}

func toChargeItem(c entities.Charge) chargeItem {
	return chargeItem{
		ID:           c.ID,
		RecordID:     c.RecordID,
		Amount:       c.Amount,
		Date:         c.Date.UTC().Format(time.RFC3339Nano),
		Status:       string(c.Status),
		MPPayload:    c.MPPayload,
		MPPayloadRaw: string(c.MPPayloadRaw),
	}
}

func fromChargeItem(it chargeItem) entities.Charge {
	dt, _ := time.Parse(time.RFC3339Nano, it.Date)
	c := entities.Charge{
		ID:        it.ID,
		RecordID:  it.RecordID,
		Amount:    it.Amount,
		Date:      dt,
		Status:    entities.ChargeStatus(it.Status),
		MPPayload: it.MPPayload,
	}
	if it.MPPayloadRaw != "" {
		c.MPPayloadRaw = []byte(it.MPPayloadRaw)
	}
	return c
}
