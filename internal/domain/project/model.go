package project

import (
	"time"

	"gorm.io/datatypes"
)

type Status string

const (
	StatusDraft       Status = "DRAFT"
	StatusSubmitted   Status = "SUBMITTED"
	StatusUnderReview Status = "UNDER_REVIEW"
	StatusApproved    Status = "APPROVED"
	StatusRejected    Status = "REJECTED"
)

// ValidStatus reports whether s is a known project lifecycle status.
// This is distinct from the application review status.
func ValidStatus(s Status) bool {
	switch s {
	case StatusDraft, StatusSubmitted, StatusUnderReview, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Project is a venture submitted by its owner through the multi-step form.
// The list-valued answers from the form steps are stored as JSON columns.
type Project struct {
	ID                   uint           `gorm:"primaryKey" json:"id"`
	Name                 string         `gorm:"size:255;not null" json:"name"`
	Description          string         `gorm:"type:text" json:"description"`
	Website              string         `gorm:"size:255" json:"website"`
	PitchDeckURL         string         `gorm:"size:512" json:"pitch_deck_url"`
	Status               Status         `gorm:"type:project_status;default:'DRAFT';not null" json:"status"`
	Blockchain           string         `gorm:"size:100;default:'ETHEREUM'" json:"blockchain"`
	OtherBlockchain      string         `gorm:"size:100" json:"other_blockchain"`
	Features             datatypes.JSON `json:"features"`
	TechStack            string         `gorm:"type:text" json:"tech_stack"`
	Security             string         `gorm:"type:text" json:"security"`
	TGEDate              *time.Time     `json:"tge_date"`
	ListingExchanges     string         `gorm:"type:text" json:"listing_exchanges"`
	MarketMaker          string         `gorm:"size:255" json:"market_maker"`
	Tokenomics           string         `gorm:"type:text" json:"tokenomics"`
	PreviousFunding      datatypes.JSON `json:"previous_funding"`
	FundingTarget        string         `gorm:"size:100;default:'0'" json:"funding_target"`
	InvestmentTypes      datatypes.JSON `json:"investment_types"`
	InterestedVCs        string         `gorm:"type:text" json:"interested_vcs"`
	KeyMetrics           string         `gorm:"type:text" json:"key_metrics"`
	RequiredServices     datatypes.JSON `json:"required_services"`
	ServiceDetails       string         `gorm:"type:text" json:"service_details"`
	AdditionalServices   string         `gorm:"type:text" json:"additional_services"`
	CompanyStructure     string         `gorm:"size:100;default:'LLC'" json:"company_structure"`
	RegulatoryCompliance datatypes.JSON `json:"regulatory_compliance"`
	LegalAdvisor         string         `gorm:"size:255" json:"legal_advisor"`
	ComplianceStrategy   string         `gorm:"type:text" json:"compliance_strategy"`
	RiskFactors          string         `gorm:"type:text" json:"risk_factors"`
	OwnerID              uint           `gorm:"not null;index" json:"owner_id"`
	CreatedAt            time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Project) TableName() string {
	return "projects"
}

// IsOwner reports whether the user owns this project.
func (p *Project) IsOwner(userID uint) bool {
	return p.OwnerID == userID
}
