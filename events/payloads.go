package events

// ClickPayload carries pointer coordinates, used only for popup placement
type ClickPayload struct {
	X int
	Y int
}

// PurchasePayload identifies the upgrade to buy
type PurchasePayload struct {
	UpgradeID string
}

// ActivateBonusPayload identifies the temporary bonus to trigger
type ActivateBonusPayload struct {
	BonusID string
}

// AnswerQuizPayload carries the selected option index
type AnswerQuizPayload struct {
	Index int
}
