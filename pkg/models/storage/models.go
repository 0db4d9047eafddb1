package storage

import "time"

// Resource is the identity shared by every ARM resource.
type Resource struct {
	ID   *string `json:"id,omitempty"`
	Name *string `json:"name,omitempty"`
	Type *string `json:"type,omitempty"`
}

// ProxyResource is a resource without a location of its own. Its fields
// are spelled out, like Resource's, so it never becomes a field-less level
// of embedding.
type ProxyResource struct {
	ID   *string `json:"id,omitempty"`
	Name *string `json:"name,omitempty"`
	Type *string `json:"type,omitempty"`
}

// TrackedResource is a resource with a location and tags.
type TrackedResource struct {
	Resource
	Tags     map[string]string `json:"tags,omitempty"`
	Location string            `json:"location" validate:"required"`
}

// AzureEntityResource is a resource with an etag.
type AzureEntityResource struct {
	Resource
	Etag *string `json:"etag,omitempty"`
}

// Sku is the pricing tier of an account.
type Sku struct {
	Name SkuName  `json:"name" validate:"required"`
	Tier *SkuTier `json:"tier,omitempty"`
}

// Identity is the managed identity of an account.
type Identity struct {
	PrincipalID *string      `json:"principalId,omitempty"`
	TenantID    *string      `json:"tenantId,omitempty"`
	Type        IdentityType `json:"type" validate:"required"`
	// UserAssignedIdentities is keyed by the ARM id of the identity.
	UserAssignedIdentities map[string]UserAssignedIdentity `json:"userAssignedIdentities,omitempty"`
}

// UserAssignedIdentity is one user-assigned identity of an account.
type UserAssignedIdentity struct {
	PrincipalID *string `json:"principalId,omitempty"`
	ClientID    *string `json:"clientId,omitempty"`
}

// ExtendedLocation is an edge zone an account is deployed to.
type ExtendedLocation struct {
	Name *string               `json:"name,omitempty"`
	Type *ExtendedLocationType `json:"type,omitempty"`
}

// StorageAccount is a storage account.
type StorageAccount struct {
	TrackedResource
	SKU              *Sku                      `json:"sku,omitempty"`
	Kind             *Kind                     `json:"kind,omitempty"`
	Identity         *Identity                 `json:"identity,omitempty"`
	ExtendedLocation *ExtendedLocation         `json:"extendedLocation,omitempty"`
	Properties       *StorageAccountProperties `json:"properties,omitempty"`
}

// StorageAccountProperties is the subset of account properties this
// package models. Fields it does not declare are dropped on decode.
type StorageAccountProperties struct {
	ProvisioningState            *ProvisioningState    `json:"provisioningState,omitempty"`
	PrimaryEndpoints             *Endpoints            `json:"primaryEndpoints,omitempty"`
	PrimaryLocation              *string               `json:"primaryLocation,omitempty"`
	StatusOfPrimary              *AccountStatus        `json:"statusOfPrimary,omitempty"`
	LastGeoFailoverTime          *time.Time            `json:"lastGeoFailoverTime,omitempty"`
	SecondaryLocation            *string               `json:"secondaryLocation,omitempty"`
	StatusOfSecondary            *AccountStatus        `json:"statusOfSecondary,omitempty"`
	CreationTime                 *time.Time            `json:"creationTime,omitempty"`
	SecondaryEndpoints           *Endpoints            `json:"secondaryEndpoints,omitempty"`
	AccessTier                   *AccessTier           `json:"accessTier,omitempty"`
	SupportsHTTPSTrafficOnly     *bool                 `json:"supportsHttpsTrafficOnly,omitempty"`
	IsHnsEnabled                 *bool                 `json:"isHnsEnabled,omitempty"`
	FailoverInProgress           *bool                 `json:"failoverInProgress,omitempty"`
	LargeFileSharesState         *LargeFileSharesState `json:"largeFileSharesState,omitempty"`
	AllowBlobPublicAccess        *bool                 `json:"allowBlobPublicAccess,omitempty"`
	MinimumTLSVersion            *MinimumTLSVersion    `json:"minimumTlsVersion,omitempty"`
	AllowSharedKeyAccess         *bool                 `json:"allowSharedKeyAccess,omitempty"`
	IsNfsV3Enabled               *bool                 `json:"isNfsV3Enabled,omitempty"`
	AllowCrossTenantReplication  *bool                 `json:"allowCrossTenantReplication,omitempty"`
	DefaultToOAuthAuthentication *bool                 `json:"defaultToOAuthAuthentication,omitempty"`
	PublicNetworkAccess          *PublicNetworkAccess  `json:"publicNetworkAccess,omitempty"`
}

// Endpoints are the service URIs of an account location.
type Endpoints struct {
	Blob  *string `json:"blob,omitempty"`
	Queue *string `json:"queue,omitempty"`
	Table *string `json:"table,omitempty"`
	File  *string `json:"file,omitempty"`
	Web   *string `json:"web,omitempty"`
	Dfs   *string `json:"dfs,omitempty"`
}

// DeletedAccount is a soft-deleted storage account.
type DeletedAccount struct {
	ProxyResource
	Properties *DeletedAccountProperties `json:"properties,omitempty"`
}

// DeletedAccountProperties carries the times as the service formats them.
type DeletedAccountProperties struct {
	StorageAccountResourceID *string `json:"storageAccountResourceId,omitempty"`
	Location                 *string `json:"location,omitempty"`
	RestoreReference         *string `json:"restoreReference,omitempty"`
	CreationTime             *string `json:"creationTime,omitempty"`
	DeletionTime             *string `json:"deletionTime,omitempty"`
}

// ListContainerItem is a blob container as returned by the list operation.
type ListContainerItem struct {
	AzureEntityResource
	Properties *ContainerProperties `json:"properties,omitempty"`
}

// ContainerProperties describe a blob container.
type ContainerProperties struct {
	Version                     *string           `json:"version,omitempty"`
	Deleted                     *bool             `json:"deleted,omitempty"`
	DeletedTime                 *time.Time        `json:"deletedTime,omitempty"`
	RemainingRetentionDays      *int64            `json:"remainingRetentionDays,omitempty"`
	DefaultEncryptionScope      *string           `json:"defaultEncryptionScope,omitempty"`
	DenyEncryptionScopeOverride *bool             `json:"denyEncryptionScopeOverride,omitempty"`
	PublicAccess                *PublicAccess     `json:"publicAccess,omitempty"`
	LastModifiedTime            *time.Time        `json:"lastModifiedTime,omitempty"`
	LeaseStatus                 *LeaseStatus      `json:"leaseStatus,omitempty"`
	LeaseState                  *LeaseState       `json:"leaseState,omitempty"`
	LeaseDuration               *LeaseDuration    `json:"leaseDuration,omitempty"`
	Metadata                    map[string]string `json:"metadata,omitempty"`
	HasLegalHold                *bool             `json:"hasLegalHold,omitempty"`
	HasImmutabilityPolicy       *bool             `json:"hasImmutabilityPolicy,omitempty"`
	EnableNfsV3RootSquash       *bool             `json:"enableNfsV3RootSquash,omitempty"`
	EnableNfsV3AllSquash        *bool             `json:"enableNfsV3AllSquash,omitempty"`
}

// EncryptionScope is an encryption scope of an account.
type EncryptionScope struct {
	Resource
	Properties *EncryptionScopeProperties `json:"properties,omitempty"`
}

// EncryptionScopeProperties describe an encryption scope.
type EncryptionScopeProperties struct {
	Source                          *EncryptionScopeSource             `json:"source,omitempty"`
	State                           *EncryptionScopeState              `json:"state,omitempty"`
	CreationTime                    *time.Time                         `json:"creationTime,omitempty"`
	LastModifiedTime                *time.Time                         `json:"lastModifiedTime,omitempty"`
	KeyVaultProperties              *EncryptionScopeKeyVaultProperties `json:"keyVaultProperties,omitempty"`
	RequireInfrastructureEncryption *bool                              `json:"requireInfrastructureEncryption,omitempty"`
}

// EncryptionScopeKeyVaultProperties is set when the source is
// Microsoft.KeyVault.
type EncryptionScopeKeyVaultProperties struct {
	KeyURI                        *string    `json:"keyUri,omitempty"`
	CurrentVersionedKeyIdentifier *string    `json:"currentVersionedKeyIdentifier,omitempty"`
	LastKeyRotationTimestamp      *time.Time `json:"lastKeyRotationTimestamp,omitempty"`
}
