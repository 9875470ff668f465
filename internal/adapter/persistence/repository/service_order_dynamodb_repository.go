package repository

import (
	"context"
	"strconv"
	"time"

	"smart_oficina/internal/domain/entities"
	"smart_oficina/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultServiceOrdersTableName = "service_orders"
	approvalTokenIndexName        = "approval_token-index"
	orderNumberCounterKey         = "order_number_counter"
)

type partItemRecord struct {
	PartID        string `dynamodbav:"part_id,omitempty"`
	Code          string `dynamodbav:"code,omitempty"`
	Description   string `dynamodbav:"description"`
	Quantity      int    `dynamodbav:"quantity"`
	UnitPrice     string `dynamodbav:"unit_price"`
	TotalPrice    string `dynamodbav:"total_price"`
	FromInventory bool   `dynamodbav:"from_inventory"`
}

type serviceItemRecord struct {
	ServiceID      string `dynamodbav:"service_id,omitempty"`
	Code           string `dynamodbav:"code,omitempty"`
	Description    string `dynamodbav:"description"`
	EstimatedHours string `dynamodbav:"estimated_hours"`
	PricePerHour   string `dynamodbav:"price_per_hour"`
	TotalPrice     string `dynamodbav:"total_price"`
}

type checklistItemRecord struct {
	Description string `dynamodbav:"description"`
	Checked     bool   `dynamodbav:"checked"`
	Notes       string `dynamodbav:"notes,omitempty"`
}

type historyEntryRecord struct {
	Status    string `dynamodbav:"status"`
	Notes     string `dynamodbav:"notes,omitempty"`
	ChangedAt string `dynamodbav:"changed_at"`
}

type serviceOrderItem struct {
	ID          string `dynamodbav:"id"`
	OrderNumber int64  `dynamodbav:"order_number"`
	Status      string `dynamodbav:"status"`

	VehicleID    string `dynamodbav:"vehicle_id"`
	VehiclePlate string `dynamodbav:"vehicle_plate,omitempty"`
	VehicleBrand string `dynamodbav:"vehicle_brand,omitempty"`
	VehicleModel string `dynamodbav:"vehicle_model,omitempty"`
	VehicleYear  int    `dynamodbav:"vehicle_year,omitempty"`
	ClientName   string `dynamodbav:"client_name,omitempty"`
	ClientPhone  string `dynamodbav:"client_phone,omitempty"`
	ClientEmail  string `dynamodbav:"client_email,omitempty"`

	OpeningDate     string                `dynamodbav:"opening_date"`
	CurrentMileage  int                   `dynamodbav:"current_mileage,omitempty"`
	ReportedProblem string                `dynamodbav:"reported_problem"`
	EntryChecklist  []checklistItemRecord `dynamodbav:"entry_checklist,omitempty"`
	FuelLevel       string                `dynamodbav:"fuel_level,omitempty"`
	VisibleDamages  []string              `dynamodbav:"visible_damages,omitempty"`

	IdentifiedProblems      []string            `dynamodbav:"identified_problems,omitempty"`
	RequiredParts           []partItemRecord    `dynamodbav:"required_parts,omitempty"`
	Services                []serviceItemRecord `dynamodbav:"services,omitempty"`
	EstimatedTotalParts     string              `dynamodbav:"estimated_total_parts"`
	EstimatedTotalServices  string              `dynamodbav:"estimated_total_services"`
	EstimatedTotal          string              `dynamodbav:"estimated_total"`
	EstimatedCompletionDate string              `dynamodbav:"estimated_completion_date,omitempty"`
	TechnicalObservations   string              `dynamodbav:"technical_observations,omitempty"`

	ApprovalToken  string `dynamodbav:"approval_token,omitempty"`
	ApprovalLink   string `dynamodbav:"approval_link,omitempty"`
	BudgetModified bool   `dynamodbav:"budget_modified"`

	StatusHistory []historyEntryRecord `dynamodbav:"status_history,omitempty"`

	ExitChecklist      []checklistItemRecord `dynamodbav:"exit_checklist,omitempty"`
	TestDrivePerformed bool                  `dynamodbav:"test_drive_performed"`
	TestDriveNotes     string                `dynamodbav:"test_drive_notes,omitempty"`
	InvoiceNumber      string                `dynamodbav:"invoice_number,omitempty"`
	PaymentMethod      string                `dynamodbav:"payment_method,omitempty"`
	FinalTotalParts    string                `dynamodbav:"final_total_parts"`
	FinalTotalServices string                `dynamodbav:"final_total_services"`
	FinalTotal         string                `dynamodbav:"final_total"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// ServiceOrderDynamoRepository persists ServiceOrder aggregates in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI approval_token-index: approval_token (string)
//
// The aggregate is written as a whole item on every mutation; the use cases
// always load, mutate and save the full record, so partial updates buy
// nothing here. The order-number sequence lives in the same table as a
// counter item updated atomically with ADD.

type ServiceOrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IServiceOrderRepository = (*ServiceOrderDynamoRepository)(nil)

func NewServiceOrderDynamoRepository(ddb *dynamodb.Client) *ServiceOrderDynamoRepository {
	return &ServiceOrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SERVICE_ORDERS_TABLE", defaultServiceOrdersTableName),
	}
}

func (r *ServiceOrderDynamoRepository) Create(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	av, err := attributevalue.MarshalMap(toServiceOrderItem(o))
	if err != nil {
		return entities.ServiceOrder{}, err
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
		return entities.ServiceOrder{}, err
	}
	return o, nil
}

func (r *ServiceOrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.ServiceOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.ServiceOrder{}, nil
	}

	var it serviceOrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ServiceOrder{}, err
	}
	return fromServiceOrderItem(it), nil
}

func (r *ServiceOrderDynamoRepository) GetByApprovalToken(ctx context.Context, token string) (entities.ServiceOrder, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(approvalTokenIndexName),
		KeyConditionExpression: aws.String("#approval_token = :token"),
		ExpressionAttributeNames: map[string]string{
			"#approval_token": "approval_token",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":token": &types.AttributeValueMemberS{Value: token},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if len(out.Items) == 0 {
		return entities.ServiceOrder{}, nil
	}

	var it serviceOrderItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.ServiceOrder{}, err
	}
	return fromServiceOrderItem(it), nil
}

func (r *ServiceOrderDynamoRepository) Update(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	av, err := attributevalue.MarshalMap(toServiceOrderItem(o))
	if err != nil {
		return entities.ServiceOrder{}, err
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
		return entities.ServiceOrder{}, err
	}
	return o, nil
}

func (r *ServiceOrderDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *ServiceOrderDynamoRepository) List(ctx context.Context) ([]entities.ServiceOrder, error) {
	var orders []entities.ServiceOrder
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			FilterExpression:  aws.String("attribute_exists(#status)"),
			ExpressionAttributeNames: map[string]string{
				"#status": "status",
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		for _, raw := range out.Items {
			var it serviceOrderItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			orders = append(orders, fromServiceOrderItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return orders, nil
}

// NextOrderNumber increments the sequence counter item atomically and returns
// the new value.
func (r *ServiceOrderDynamoRepository) NextOrderNumber(ctx context.Context) (int64, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: orderNumberCounterKey},
		},
		UpdateExpression: aws.String("ADD #seq :one"),
		ExpressionAttributeNames: map[string]string{
			"#seq": "seq",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, err
	}

	seq, ok := out.Attributes["seq"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, errMissingSequenceAttribute
	}
	return strconv.ParseInt(seq.Value, 10, 64)
}

func toServiceOrderItem(o entities.ServiceOrder) serviceOrderItem {
	return serviceOrderItem{
		ID:          o.ID,
		OrderNumber: o.OrderNumber,
		Status:      string(o.Status),

		VehicleID:    o.VehicleID,
		VehiclePlate: o.Vehicle.Plate,
		VehicleBrand: o.Vehicle.Brand,
		VehicleModel: o.Vehicle.Model,
		VehicleYear:  o.Vehicle.Year,
		ClientName:   o.Client.Name,
		ClientPhone:  o.Client.Phone,
		ClientEmail:  o.Client.Email,

		OpeningDate:     o.OpeningDate.UTC().Format(time.RFC3339Nano),
		CurrentMileage:  o.CurrentMileage,
		ReportedProblem: o.ReportedProblem,
		EntryChecklist:  toChecklistRecords(o.EntryChecklist),
		FuelLevel:       o.FuelLevel,
		VisibleDamages:  o.VisibleDamages,

		IdentifiedProblems:      o.IdentifiedProblems,
		RequiredParts:           toPartRecords(o.RequiredParts),
		Services:                toServiceRecords(o.Services),
		EstimatedTotalParts:     floatToString(o.EstimatedTotalParts),
		EstimatedTotalServices:  floatToString(o.EstimatedTotalServices),
		EstimatedTotal:          floatToString(o.EstimatedTotal),
		EstimatedCompletionDate: formatOptionalTime(o.EstimatedCompletionDate),
		TechnicalObservations:   o.TechnicalObservations,

		ApprovalToken:  o.ApprovalToken,
		ApprovalLink:   o.ApprovalLink,
		BudgetModified: o.BudgetModified,

		StatusHistory: toHistoryRecords(o.StatusHistory),

		ExitChecklist:      toChecklistRecords(o.ExitChecklist),
		TestDrivePerformed: o.TestDrive.Performed,
		TestDriveNotes:     o.TestDrive.Notes,
		InvoiceNumber:      o.InvoiceNumber,
		PaymentMethod:      o.PaymentMethod,
		FinalTotalParts:    floatToString(o.FinalTotalParts),
		FinalTotalServices: floatToString(o.FinalTotalServices),
		FinalTotal:         floatToString(o.FinalTotal),

		CreatedAt: o.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: o.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromServiceOrderItem(it serviceOrderItem) entities.ServiceOrder {
	openingDate, _ := time.Parse(time.RFC3339Nano, it.OpeningDate)
	completionDate, _ := time.Parse(time.RFC3339Nano, it.EstimatedCompletionDate)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	return entities.ServiceOrder{
		ID:          it.ID,
		OrderNumber: it.OrderNumber,
		Status:      entities.ServiceOrderStatus(it.Status),

		VehicleID: it.VehicleID,
		Vehicle: entities.VehicleSnapshot{
			Plate: it.VehiclePlate,
			Brand: it.VehicleBrand,
			Model: it.VehicleModel,
			Year:  it.VehicleYear,
		},
		Client: entities.ClientSnapshot{
			Name:  it.ClientName,
			Phone: it.ClientPhone,
			Email: it.ClientEmail,
		},

		OpeningDate:     openingDate,
		CurrentMileage:  it.CurrentMileage,
		ReportedProblem: it.ReportedProblem,
		EntryChecklist:  fromChecklistRecords(it.EntryChecklist),
		FuelLevel:       it.FuelLevel,
		VisibleDamages:  it.VisibleDamages,

		IdentifiedProblems:      it.IdentifiedProblems,
		RequiredParts:           fromPartRecords(it.RequiredParts),
		Services:                fromServiceRecords(it.Services),
		EstimatedTotalParts:     stringToFloat(it.EstimatedTotalParts),
		EstimatedTotalServices:  stringToFloat(it.EstimatedTotalServices),
		EstimatedTotal:          stringToFloat(it.EstimatedTotal),
		EstimatedCompletionDate: completionDate,
		TechnicalObservations:   it.TechnicalObservations,

		ApprovalToken:  it.ApprovalToken,
		ApprovalLink:   it.ApprovalLink,
		BudgetModified: it.BudgetModified,

		StatusHistory: fromHistoryRecords(it.StatusHistory),

		ExitChecklist: fromChecklistRecords(it.ExitChecklist),
		TestDrive: entities.TestDrive{
			Performed: it.TestDrivePerformed,
			Notes:     it.TestDriveNotes,
		},
		InvoiceNumber:      it.InvoiceNumber,
		PaymentMethod:      it.PaymentMethod,
		FinalTotalParts:    stringToFloat(it.FinalTotalParts),
		FinalTotalServices: stringToFloat(it.FinalTotalServices),
		FinalTotal:         stringToFloat(it.FinalTotal),

		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

func toPartRecords(parts []entities.PartItem) []partItemRecord {
	if len(parts) == 0 {
		return nil
	}
	out := make([]partItemRecord, 0, len(parts))
	for _, p := range parts {
		out = append(out, partItemRecord{
			PartID:        p.PartID,
			Code:          p.Code,
			Description:   p.Description,
			Quantity:      p.Quantity,
			UnitPrice:     floatToString(p.UnitPrice),
			TotalPrice:    floatToString(p.TotalPrice),
			FromInventory: p.FromInventory,
		})
	}
	return out
}

func fromPartRecords(records []partItemRecord) []entities.PartItem {
	if len(records) == 0 {
		return nil
	}
	out := make([]entities.PartItem, 0, len(records))
	for _, rec := range records {
		out = append(out, entities.PartItem{
			PartID:        rec.PartID,
			Code:          rec.Code,
			Description:   rec.Description,
			Quantity:      rec.Quantity,
			UnitPrice:     stringToFloat(rec.UnitPrice),
			TotalPrice:    stringToFloat(rec.TotalPrice),
			FromInventory: rec.FromInventory,
		})
	}
	return out
}

func toServiceRecords(services []entities.ServiceItem) []serviceItemRecord {
	if len(services) == 0 {
		return nil
	}
	out := make([]serviceItemRecord, 0, len(services))
	for _, s := range services {
		out = append(out, serviceItemRecord{
			ServiceID:      s.ServiceID,
			Code:           s.Code,
			Description:    s.Description,
			EstimatedHours: floatToString(s.EstimatedHours),
			PricePerHour:   floatToString(s.PricePerHour),
			TotalPrice:     floatToString(s.TotalPrice),
		})
	}
	return out
}

func fromServiceRecords(records []serviceItemRecord) []entities.ServiceItem {
	if len(records) == 0 {
		return nil
	}
	out := make([]entities.ServiceItem, 0, len(records))
	for _, rec := range records {
		out = append(out, entities.ServiceItem{
			ServiceID:      rec.ServiceID,
			Code:           rec.Code,
			Description:    rec.Description,
			EstimatedHours: stringToFloat(rec.EstimatedHours),
			PricePerHour:   stringToFloat(rec.PricePerHour),
			TotalPrice:     stringToFloat(rec.TotalPrice),
		})
	}
	return out
}

func toChecklistRecords(items []entities.ChecklistItem) []checklistItemRecord {
	if len(items) == 0 {
		return nil
	}
	out := make([]checklistItemRecord, 0, len(items))
	for _, it := range items {
		out = append(out, checklistItemRecord(it))
	}
	return out
}

func fromChecklistRecords(records []checklistItemRecord) []entities.ChecklistItem {
	if len(records) == 0 {
		return nil
	}
	out := make([]entities.ChecklistItem, 0, len(records))
	for _, rec := range records {
		out = append(out, entities.ChecklistItem(rec))
	}
	return out
}

func toHistoryRecords(entries []entities.StatusHistoryEntry) []historyEntryRecord {
	if len(entries) == 0 {
		return nil
	}
	out := make([]historyEntryRecord, 0, len(entries))
	for _, e := range entries {
		out = append(out, historyEntryRecord{
			Status:    string(e.Status),
			Notes:     e.Notes,
			ChangedAt: e.ChangedAt.UTC().Format(time.RFC3339Nano),
		})
	}
	return out
}

func fromHistoryRecords(records []historyEntryRecord) []entities.StatusHistoryEntry {
	if len(records) == 0 {
		return nil
	}
	out := make([]entities.StatusHistoryEntry, 0, len(records))
	for _, rec := range records {
		changedAt, _ := time.Parse(time.RFC3339Nano, rec.ChangedAt)
		out = append(out, entities.StatusHistoryEntry{
			Status:    entities.ServiceOrderStatus(rec.Status),
			Notes:     rec.Notes,
			ChangedAt: changedAt,
		})
	}
	return out
}

func formatOptionalTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}
