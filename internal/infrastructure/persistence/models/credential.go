package models

import (
	"time"

	"github.com/storefront/backend/internal/domain/credential"
)

// TenantCredentialModel maps tenant credentials to the tenant_credentials
// table. One row per tenant; saves overwrite in place.
type TenantCredentialModel struct {
	TenantID   string `gorm:"primaryKey;size:128;column:tenant_id"`
	Token      string `gorm:"not null"`
	MerchantID string `gorm:"not null;size:64"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName overrides the table name
func (TenantCredentialModel) TableName() string {
	return "tenant_credentials"
}

// ToDomain converts the model to a domain credential
func (m *TenantCredentialModel) ToDomain() *credential.Credential {
	return &credential.Credential{
		TenantID:   m.TenantID,
		Token:      m.Token,
		MerchantID: m.MerchantID,
	}
}

// TenantCredentialModelFromDomain builds a model from a domain credential
func TenantCredentialModelFromDomain(c *credential.Credential) *TenantCredentialModel {
	return &TenantCredentialModel{
		TenantID:   c.TenantID,
		Token:      c.Token,
		MerchantID: c.MerchantID,
	}
}
