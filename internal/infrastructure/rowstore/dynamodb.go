package rowstore

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoAPI is the subset of *dynamodb.Client used by DynamoStore.
type DynamoAPI interface {
	Scan(ctx context.Context, in *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, in *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, in *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

// DynamoStore maps tables onto DynamoDB tables.
//
// Table requirements:
//   - PK: id (string)
//
// Filters run as scan filter expressions; ordering and limits are applied
// after the scan. Updates are conditional on the filters still holding, so a
// row changed concurrently is skipped instead of overwritten.
type DynamoStore struct {
	ddb DynamoAPI
	now func() time.Time
}

var _ RowStore = (*DynamoStore)(nil)

func NewDynamoStore(ddb DynamoAPI) *DynamoStore {
	return &DynamoStore{ddb: ddb, now: time.Now}
}

func (s *DynamoStore) Select(ctx context.Context, table string, q Query) ([]Row, error) {
	rows, err := s.scan(ctx, table, q.Filters)
	if err != nil {
		return nil, err
	}
	sortRows(rows, q.OrderBy, q.Desc)
	if q.Limit > 0 && len(rows) > q.Limit {
		rows = rows[:q.Limit]
	}
	return rows, nil
}

func (s *DynamoStore) Insert(ctx context.Context, table string, row Row) (Row, error) {
	r := prepareInsert(row, s.now())
	av, err := attributevalue.MarshalMap(map[string]any(r))
	if err != nil {
		return nil, err
	}

	_, err = s.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(table),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		log.Printf("[rowstore][dynamodb] put failed table=%s err=%v", table, err)
		return nil, remoteErr("insert", table, err)
	}
	return r, nil
}

func (s *DynamoStore) Update(ctx context.Context, table string, filters []Filter, patch Row) ([]Row, error) {
	if len(patch) == 0 {
		return []Row{}, nil
	}
	targets, err := s.scan(ctx, table, filters)
	if err != nil {
		return nil, err
	}

	sets := make([]string, 0, len(patch))
	names := map[string]string{"#id": "id"}
	values := map[string]types.AttributeValue{}
	i := 0
	for col, v := range encodeRow(patch) {
		n, p := fmt.Sprintf("#p%d", i), fmt.Sprintf(":p%d", i)
		av, err := attributevalue.Marshal(v)
		if err != nil {
			return nil, err
		}
		sets = append(sets, n+" = "+p)
		names[n] = col
		values[p] = av
		i++
	}
	cond, fNames, fValues, err := filterExpression(filters)
	if err != nil {
		return nil, err
	}
	condition := "attribute_exists(#id)"
	if cond != "" {
		condition += " AND " + cond
	}

	out := make([]Row, 0, len(targets))
	for _, t := range targets {
		res, err := s.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
			TableName: aws.String(table),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: fmt.Sprint(t["id"])},
			},
			ConditionExpression:       aws.String(condition),
			UpdateExpression:          aws.String("SET " + strings.Join(sets, ", ")),
			ExpressionAttributeNames:  mergeNames(names, fNames),
			ExpressionAttributeValues: mergeValues(values, fValues),
			ReturnValues:              types.ReturnValueAllNew,
		})
		if err != nil {
			var cfe *types.ConditionalCheckFailedException
			if errors.As(err, &cfe) {
				log.Printf("[rowstore][dynamodb] update skipped, condition no longer holds table=%s id=%v", table, t["id"])
				continue
			}
			return nil, remoteErr("update", table, err)
		}
		var updated Row
		if err := attributevalue.UnmarshalMap(res.Attributes, &updated); err != nil {
			return nil, err
		}
		out = append(out, updated)
	}
	return out, nil
}

func (s *DynamoStore) Delete(ctx context.Context, table string, filters []Filter) (int, error) {
	targets, err := s.scan(ctx, table, filters)
	if err != nil {
		return 0, err
	}
	for _, t := range targets {
		_, err := s.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
			TableName: aws.String(table),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: fmt.Sprint(t["id"])},
			},
		})
		if err != nil {
			return 0, remoteErr("delete", table, err)
		}
	}
	return len(targets), nil
}

func (s *DynamoStore) scan(ctx context.Context, table string, filters []Filter) ([]Row, error) {
	cond, names, values, err := filterExpression(filters)
	if err != nil {
		return nil, err
	}
	in := &dynamodb.ScanInput{TableName: aws.String(table), ConsistentRead: aws.Bool(true)}
	if cond != "" {
		in.FilterExpression = aws.String(cond)
		in.ExpressionAttributeNames = names
		in.ExpressionAttributeValues = values
	}

	rows := make([]Row, 0)
	for {
		out, err := s.ddb.Scan(ctx, in)
		if err != nil {
			log.Printf("[rowstore][dynamodb] scan failed table=%s err=%v", table, err)
			return nil, remoteErr("select", table, err)
		}
		for _, item := range out.Items {
			var r Row
			if err := attributevalue.UnmarshalMap(item, &r); err != nil {
				return nil, err
			}
			rows = append(rows, r)
		}
		if len(out.LastEvaluatedKey) == 0 {
			return rows, nil
		}
		in.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

var dynamoOperators = map[Op]string{OpEq: "=", OpGte: ">=", OpLte: "<="}

func filterExpression(filters []Filter) (string, map[string]string, map[string]types.AttributeValue, error) {
	if len(filters) == 0 {
		return "", nil, nil, nil
	}
	parts := make([]string, 0, len(filters))
	names := make(map[string]string, len(filters))
	values := make(map[string]types.AttributeValue, len(filters))
	for i, f := range filters {
		op, ok := dynamoOperators[f.Op]
		if !ok {
			return "", nil, nil, fmt.Errorf("unsupported operator %q", f.Op)
		}
		av, err := attributevalue.Marshal(encodeValue(f.Value))
		if err != nil {
			return "", nil, nil, err
		}
		n, v := fmt.Sprintf("#f%d", i), fmt.Sprintf(":f%d", i)
		parts = append(parts, fmt.Sprintf("%s %s %s", n, op, v))
		names[n] = f.Column
		values[v] = av
	}
	return strings.Join(parts, " AND "), names, values, nil
}

func mergeNames(a, b map[string]string) map[string]string {
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

func mergeValues(a, b map[string]types.AttributeValue) map[string]types.AttributeValue {
	out := make(map[string]types.AttributeValue, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
