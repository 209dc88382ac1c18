package repository

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func tableOrDefault(name, def string) string {
	if name != "" {
		return name
	}
	return def
}

// scanAll reads a whole table, following LastEvaluatedKey. The clinic tables
// are small enough for a full scan.
func scanAll[T any](ctx context.Context, ddb *dynamodb.Client, table string) ([]T, error) {
	p := dynamodb.NewScanPaginator(ddb, &dynamodb.ScanInput{TableName: aws.String(table)})
	out := make([]T, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []T
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		out = append(out, items...)
	}
	return out, nil
}

// getItem loads one item by string key. found is false when the key does not exist.
func getItem[T any](ctx context.Context, ddb *dynamodb.Client, table, keyName, keyValue string) (item T, found bool, err error) {
	out, err := ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(table),
		Key: map[string]types.AttributeValue{
			keyName: &types.AttributeValueMemberS{Value: keyValue},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return item, false, err
	}
	if len(out.Item) == 0 {
		return item, false, nil
	}
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return item, false, err
	}
	return item, true, nil
}
