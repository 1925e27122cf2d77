package repository

import (
	"context"
	"encoding/json"
	"time"

	"renohub/internal/domain/entities"
	"renohub/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultProjectsTableName = "projects"
	projectsUserIDIndex      = "user_id-index"
)

// projectItem is the DynamoDB shape of a ProjectRecord. Nested structures
// (form data, estimate, quote) are stored as JSON documents; DynamoDB only
// needs to index id and user_id.
type projectItem struct {
	ID         string `dynamodbav:"id"`
	UserID     string `dynamodbav:"user_id"`
	TemplateID string `dynamodbav:"template_id"`
	Status     string `dynamodbav:"status"`
	Document   string `dynamodbav:"document"`
	CreatedAt  string `dynamodbav:"created_at"`
	UpdatedAt  string `dynamodbav:"updated_at"`
}

// ProjectDynamoRepository persists ProjectRecord entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI (user_id-index): user_id
type ProjectDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProjectRepository = (*ProjectDynamoRepository)(nil)

func NewProjectDynamoRepository(ddb *dynamodb.Client) *ProjectDynamoRepository {
	return &ProjectDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROJECTS_TABLE", defaultProjectsTableName),
	}
}

func (r *ProjectDynamoRepository) Create(ctx context.Context, p entities.ProjectRecord) (entities.ProjectRecord, error) {
	it, err := toProjectItem(p)
	if err != nil {
		return entities.ProjectRecord{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.ProjectRecord{}, err
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
		return entities.ProjectRecord{}, err
	}
	return p, nil
}

func (r *ProjectDynamoRepository) GetByID(ctx context.Context, id string) (entities.ProjectRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ProjectRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.ProjectRecord{}, nil
	}

	var it projectItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ProjectRecord{}, err
	}
	return fromProjectItem(it)
}

// Update overwrites the whole record. Project mutations always flow through
// the usecases, which load-modify-store; no partial update expressions needed.
func (r *ProjectDynamoRepository) Update(ctx context.Context, p entities.ProjectRecord) (entities.ProjectRecord, error) {
	it, err := toProjectItem(p)
	if err != nil {
		return entities.ProjectRecord{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.ProjectRecord{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.ProjectRecord{}, err
	}
	return p, nil
}

func (r *ProjectDynamoRepository) FindByUser(ctx context.Context, userID string) ([]entities.ProjectRecord, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(projectsUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.ProjectRecord, 0, len(out.Items))
	for _, raw := range out.Items {
		var it projectItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		p, err := fromProjectItem(it)
		if err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, nil
}

func toProjectItem(p entities.ProjectRecord) (projectItem, error) {
	doc, err := json.Marshal(p)
	if err != nil {
		return projectItem{}, err
	}
	return projectItem{
		ID:         p.ID,
		UserID:     p.UserID,
		TemplateID: p.TemplateID,
		Status:     string(p.Status),
		Document:   string(doc),
		CreatedAt:  p.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:  p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func fromProjectItem(it projectItem) (entities.ProjectRecord, error) {
	var p entities.ProjectRecord
	if err := json.Unmarshal([]byte(it.Document), &p); err != nil {
		return entities.ProjectRecord{}, err
	}
	return p, nil
}
