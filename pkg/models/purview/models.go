package purview

import "time"

// ProxyResource carries the identity of a scanning resource.
type ProxyResource struct {
	ID   *string `json:"id,omitempty"`
	Name *string `json:"name,omitempty"`
}

// DataSource holds the fields shared by every data source variant.
type DataSource struct {
	ProxyResource
	Scans        ScanClassificationArray `json:"scans,omitempty"`
	CreationType *CreationType           `json:"creationType,omitempty"`
}

// Scan holds the fields shared by every scan variant.
type Scan struct {
	ProxyResource
	LastRunResult        *ScanResult   `json:"lastRunResult,omitempty"`
	ScanID               *string       `json:"scanId,omitempty"`
	DataSourceIdentifier *string       `json:"dataSourceIdentifier,omitempty"`
	DataSourceName       *string       `json:"dataSourceName,omitempty"`
	CreationType         *CreationType `json:"creationType,omitempty"`
}

// VersionedScanRuleset is a scan ruleset at a specific version.
type VersionedScanRuleset struct {
	ProxyResource
	ScanRulesetType *ScanRulesetType   `json:"scanRulesetType,omitempty"`
	Status          *ScanRulesetStatus `json:"status,omitempty"`
	Version         *int32             `json:"version,omitempty"`
}

// ScanRuleset holds the fields shared by every scan ruleset variant.
type ScanRuleset struct {
	VersionedScanRuleset
}

// SystemScanRuleset holds the fields shared by every service-defined
// ruleset variant.
type SystemScanRuleset struct {
	VersionedScanRuleset
}

// Credential holds the fields shared by every credential variant.
type Credential struct {
	ProxyResource
}

// IntegrationRuntime holds the fields shared by every integration runtime
// variant.
type IntegrationRuntime struct {
	ProxyResource
}

// ClassificationRule holds the fields shared by every classification rule
// variant.
type ClassificationRule struct {
	ProxyResource
}

// ClassificationRulePattern holds the fields shared by every rule pattern.
type ClassificationRulePattern struct {
	Pattern *string `json:"pattern,omitempty"`
}

// ScanResult is one run of a scan.
type ScanResult struct {
	ID                 *string           `json:"id,omitempty"`
	ParentID           *string           `json:"parentId,omitempty"`
	ResourceID         *string           `json:"resourceId,omitempty"`
	IngestionJobID     *string           `json:"ingestionJobId,omitempty"`
	Status             *ScanResultStatus `json:"status,omitempty"`
	StartTime          *time.Time        `json:"startTime,omitempty"`
	EndTime            *time.Time        `json:"endTime,omitempty"`
	ScanRulesetVersion *int32            `json:"scanRulesetVersion,omitempty"`
	ScanRulesetType    *ScanRulesetType  `json:"scanRulesetType,omitempty"`
	ScanLevelType      *ScanLevelType    `json:"scanLevelType,omitempty"`
	ErrorMessage       *string           `json:"errorMessage,omitempty"`
	Error              *ErrorModel       `json:"error,omitempty"`
	RunType            *string           `json:"runType,omitempty"`
	DataSourceType     *string           `json:"dataSourceType,omitempty"`
}

// CollectionReference points at the collection that owns a resource.
type CollectionReference struct {
	LastModifiedAt *time.Time `json:"lastModifiedAt,omitempty"`
	ReferenceName  *string    `json:"referenceName,omitempty"`
	Type           *string    `json:"type,omitempty"`
}

// CredentialReference names a stored credential.
type CredentialReference struct {
	ReferenceName  *string         `json:"referenceName,omitempty"`
	CredentialType *CredentialType `json:"credentialType,omitempty"`
}

// ConnectedVia names the integration runtime a scan runs on.
type ConnectedVia struct {
	ReferenceName          *string `json:"referenceName,omitempty"`
	IntegrationRuntimeType *string `json:"integrationRuntimeType,omitempty"`
}

// KeyVaultSecret references a secret held in a linked key vault.
type KeyVaultSecret struct {
	Type          *string           `json:"type,omitempty"`
	SecretName    *string           `json:"secretName,omitempty"`
	SecretVersion *string           `json:"secretVersion,omitempty"`
	Store         *LinkedServiceRef `json:"store,omitempty"`
}

// LinkedServiceRef references a key vault connection by name.
type LinkedServiceRef struct {
	ReferenceName *string `json:"referenceName,omitempty"`
	Type          *string `json:"type,omitempty"`
}
