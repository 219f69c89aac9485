package domain

// Domain partitions categories into the sales and expense sides of the ledger.
type Domain string

const (
	DomainSales   Domain = "sales"
	DomainExpense Domain = "expense"
)

// Category names one sub-ledger. The values double as the keys under which
// each category's records live in the snapshot tree.
type Category string

const (
	CategoryBoxOrders     Category = "boxOrders"
	CategoryFlatLogs      Category = "flatLogs"
	CategoryOtherIncome   Category = "otherIncome"
	CategoryWorkers       Category = "workers"
	CategoryBoxMakers     Category = "boxMakers"
	CategoryTransporters  Category = "transporters"
	CategoryWoodCutters   Category = "woodCutters"
	CategoryLogsBought    Category = "logsBought"
	CategoryOtherExpenses Category = "otherExpenses"
)

// FieldRule maps one amount field on a child record to a rollup bucket.
type FieldRule struct {
	Field        string
	Contribution Contribution
}

// ShapeRule describes one sub-collection walk under each top-level record of
// a category. When Group is set, the walk descends into each record of that
// intermediate collection first and reads Collection from there; entries and
// payments found inside a group stay attributed to that group alone.
type ShapeRule struct {
	Group      string
	Collection string
	TimeField  string
	Fields     []FieldRule
}

// CategoryDescriptor is static configuration: which domain a category belongs
// to and how to walk its slice of the snapshot. Adding a category is a data
// change here, not new extraction code.
type CategoryDescriptor struct {
	Name   Category
	Domain Domain
	Shape  []ShapeRule
}

var descriptors = []CategoryDescriptor{
	{
		Name:   CategoryBoxOrders,
		Domain: DomainSales,
		Shape: []ShapeRule{
			{Collection: "orders", TimeField: "date", Fields: []FieldRule{
				{Field: "total", Contribution: ContributionTotal},
				{Field: "initialPaid", Contribution: ContributionPaid},
			}},
			{Collection: "payments", TimeField: "date", Fields: []FieldRule{
				{Field: "amount", Contribution: ContributionPaid},
			}},
		},
	},
	{
		Name:   CategoryFlatLogs,
		Domain: DomainSales,
		Shape: []ShapeRule{
			{Collection: "sales", TimeField: "date", Fields: []FieldRule{
				{Field: "total", Contribution: ContributionTotal},
				{Field: "initialPaid", Contribution: ContributionPaid},
			}},
			{Collection: "payments", TimeField: "date", Fields: []FieldRule{
				{Field: "amount", Contribution: ContributionPaid},
			}},
		},
	},
	{
		Name:   CategoryOtherIncome,
		Domain: DomainSales,
		Shape: []ShapeRule{
			{Collection: "entries", TimeField: "date", Fields: []FieldRule{
				{Field: "amount", Contribution: ContributionTotal},
				{Field: "paid", Contribution: ContributionPaid},
			}},
		},
	},
	{
		Name:   CategoryWorkers,
		Domain: DomainExpense,
		Shape: []ShapeRule{
			{Collection: "attendance", TimeField: "date", Fields: []FieldRule{
				{Field: "earned", Contribution: ContributionTotal},
			}},
			{Collection: "payments", TimeField: "date", Fields: []FieldRule{
				{Field: "amount", Contribution: ContributionPaid},
			}},
		},
	},
	{
		Name:   CategoryBoxMakers,
		Domain: DomainExpense,
		Shape: []ShapeRule{
			{Collection: "work", TimeField: "date", Fields: []FieldRule{
				{Field: "total", Contribution: ContributionTotal},
			}},
			{Collection: "payments", TimeField: "date", Fields: []FieldRule{
				{Field: "amount", Contribution: ContributionPaid},
			}},
		},
	},
	{
		Name:   CategoryTransporters,
		Domain: DomainExpense,
		Shape: []ShapeRule{
			{Collection: "trips", TimeField: "date", Fields: []FieldRule{
				{Field: "fare", Contribution: ContributionTotal},
			}},
			{Collection: "payments", TimeField: "date", Fields: []FieldRule{
				{Field: "amount", Contribution: ContributionPaid},
			}},
		},
	},
	{
		Name:   CategoryWoodCutters,
		Domain: DomainExpense,
		Shape: []ShapeRule{
			{Collection: "cuttings", TimeField: "date", Fields: []FieldRule{
				{Field: "total", Contribution: ContributionTotal},
			}},
			{Collection: "payments", TimeField: "date", Fields: []FieldRule{
				{Field: "amount", Contribution: ContributionPaid},
			}},
		},
	},
	{
		Name:   CategoryLogsBought,
		Domain: DomainExpense,
		Shape: []ShapeRule{
			{Group: "logCalculations", Collection: "calculations", TimeField: "date", Fields: []FieldRule{
				{Field: "buyedPrice", Contribution: ContributionTotal},
				{Field: "payedPrice", Contribution: ContributionPaid},
			}},
			{Group: "logCalculations", Collection: "payments", TimeField: "date", Fields: []FieldRule{
				{Field: "amount", Contribution: ContributionPaid},
			}},
		},
	},
	{
		Name:   CategoryOtherExpenses,
		Domain: DomainExpense,
		Shape: []ShapeRule{
			{Collection: "entries", TimeField: "date", Fields: []FieldRule{
				{Field: "amount", Contribution: ContributionTotal},
				{Field: "paid", Contribution: ContributionPaid},
			}},
		},
	},
}

// Descriptors returns the fixed category table.
func Descriptors() []CategoryDescriptor {
	return descriptors
}

// DescriptorFor looks up one category's descriptor.
func DescriptorFor(name Category) (CategoryDescriptor, bool) {
	for _, d := range descriptors {
		if d.Name == name {
			return d, true
		}
	}
	return CategoryDescriptor{}, false
}
