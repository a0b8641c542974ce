package models

type PaymentType string

const (
	PaymentTypeIncome  PaymentType = "income"
	PaymentTypeExpense PaymentType = "expense"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

type PaymentCategory string

const (
	CategoryMembership PaymentCategory = "membership"
	CategoryTraining   PaymentCategory = "training"
	CategoryTournament PaymentCategory = "tournament"
	CategoryEquipment  PaymentCategory = "equipment"
	CategoryFacility   PaymentCategory = "facility"
	CategorySalary     PaymentCategory = "salary"
	CategoryOther      PaymentCategory = "other"
)

type MatchStatus string

const (
	MatchUpcoming   MatchStatus = "upcoming"
	MatchInProgress MatchStatus = "in_progress"
	MatchCompleted  MatchStatus = "completed"
)
