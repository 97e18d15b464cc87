package rowstore

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDynamo returns canned pages and records inputs; it does not evaluate
// expressions.
type fakeDynamo struct {
	pages     [][]map[string]types.AttributeValue
	scans     []*dynamodb.ScanInput
	puts      []*dynamodb.PutItemInput
	updates   []*dynamodb.UpdateItemInput
	deletes   []*dynamodb.DeleteItemInput
	failIDs   map[string]bool
	scanError error
}

func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	cp := *in
	f.scans = append(f.scans, &cp)
	if f.scanError != nil {
		return nil, f.scanError
	}
	page := len(f.scans) - 1
	if page >= len(f.pages) {
		return &dynamodb.ScanOutput{}, nil
	}
	out := &dynamodb.ScanOutput{Items: f.pages[page]}
	if page < len(f.pages)-1 {
		out.LastEvaluatedKey = map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: "cursor"}}
	}
	return out, nil
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.puts = append(f.puts, in)
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.updates = append(f.updates, in)
	id := in.Key["id"].(*types.AttributeValueMemberS).Value
	if f.failIDs[id] {
		return nil, &types.ConditionalCheckFailedException{Message: aws.String("conditional check failed")}
	}
	return &dynamodb.UpdateItemOutput{Attributes: map[string]types.AttributeValue{
		"id":     &types.AttributeValueMemberS{Value: id},
		"status": &types.AttributeValueMemberS{Value: "pago"},
	}}, nil
}

func (f *fakeDynamo) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	f.deletes = append(f.deletes, in)
	return &dynamodb.DeleteItemOutput{}, nil
}

func item(t *testing.T, r Row) map[string]types.AttributeValue {
	t.Helper()
	av, err := attributevalue.MarshalMap(map[string]any(r))
	require.NoError(t, err)
	return av
}

func TestDynamoStore_SelectPaginatesSortsAndLimits(t *testing.T) {
	fake := &fakeDynamo{pages: [][]map[string]types.AttributeValue{
		{item(t, Row{"id": "a", "created_at": "2024-01-01T00:00:00.000000Z"})},
		{item(t, Row{"id": "b", "created_at": "2024-03-01T00:00:00.000000Z"}), item(t, Row{"id": "c", "created_at": "2024-02-01T00:00:00.000000Z"})},
	}}
	s := NewDynamoStore(fake)

	rows, err := s.Select(context.Background(), "logs_pix", Query{
		Filters: []Filter{Eq("status", "paid")},
		OrderBy: "created_at",
		Desc:    true,
		Limit:   2,
	})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "b", rows[0]["id"])
	assert.Equal(t, "c", rows[1]["id"])

	require.Len(t, fake.scans, 2)
	assert.Equal(t, "#f0 = :f0", aws.ToString(fake.scans[0].FilterExpression))
	assert.Equal(t, "status", fake.scans[0].ExpressionAttributeNames["#f0"])
	assert.NotNil(t, fake.scans[1].ExclusiveStartKey)
}

func TestDynamoStore_InsertAssignsID(t *testing.T) {
	fake := &fakeDynamo{}
	s := NewDynamoStore(fake)

	row, err := s.Insert(context.Background(), "master_planos", Row{"nome": "Pro"})
	require.NoError(t, err)
	assert.NotEmpty(t, row["id"])
	assert.NotEmpty(t, row["created_at"])
	require.Len(t, fake.puts, 1)
	assert.Equal(t, "attribute_not_exists(#id)", aws.ToString(fake.puts[0].ConditionExpression))
}

func TestDynamoStore_UpdateIsConditional(t *testing.T) {
	fake := &fakeDynamo{
		pages: [][]map[string]types.AttributeValue{{
			item(t, Row{"id": "r-1", "status": "pending"}),
			item(t, Row{"id": "r-2", "status": "pending"}),
		}},
		failIDs: map[string]bool{"r-2": true},
	}
	s := NewDynamoStore(fake)

	rows, err := s.Update(context.Background(), "renovacoes_pendentes", []Filter{Eq("status", "pending")}, Row{"status": "pago"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "r-1", rows[0]["id"])

	require.Len(t, fake.updates, 2)
	assert.Equal(t, "attribute_exists(#id) AND #f0 = :f0", aws.ToString(fake.updates[0].ConditionExpression))
	assert.Equal(t, "SET #p0 = :p0", aws.ToString(fake.updates[0].UpdateExpression))
	assert.Equal(t, types.ReturnValueAllNew, fake.updates[0].ReturnValues)
}

func TestDynamoStore_Delete(t *testing.T) {
	fake := &fakeDynamo{pages: [][]map[string]types.AttributeValue{{item(t, Row{"id": "a-1"})}}}
	s := NewDynamoStore(fake)

	n, err := s.Delete(context.Background(), "master_associados", []Filter{Eq("id", "a-1")})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	require.Len(t, fake.deletes, 1)
}

func TestDynamoStore_ScanFailure(t *testing.T) {
	s := NewDynamoStore(&fakeDynamo{scanError: errors.New("boom")})
	_, err := s.Select(context.Background(), "t", Query{})
	assert.ErrorIs(t, err, ErrRemoteFailure)
}
