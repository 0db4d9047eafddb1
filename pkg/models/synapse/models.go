package synapse

import (
	"time"

	json "github.com/goccy/go-json"
)

// Resource is the identity shared by every ARM resource.
type Resource struct {
	ID   *string `json:"id,omitempty"`
	Name *string `json:"name,omitempty"`
	Type *string `json:"type,omitempty"`
}

// ProxyResource is a resource without a location of its own. Its fields
// are spelled out rather than embedding Resource: goccy/go-json fails to
// encode a third level of embedding through a struct with no fields of its
// own.
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

// SystemData records who created and last modified a resource.
type SystemData struct {
	CreatedBy          *string        `json:"createdBy,omitempty"`
	CreatedByType      *CreatedByType `json:"createdByType,omitempty"`
	CreatedAt          *time.Time     `json:"createdAt,omitempty"`
	LastModifiedBy     *string        `json:"lastModifiedBy,omitempty"`
	LastModifiedByType *CreatedByType `json:"lastModifiedByType,omitempty"`
	LastModifiedAt     *time.Time     `json:"lastModifiedAt,omitempty"`
}

// AzureSKU is the size and tier of a Kusto pool.
type AzureSKU struct {
	Name     AzureSKUName `json:"name" validate:"required"`
	Capacity *int32       `json:"capacity,omitempty"`
	Tier     AzureSKUTier `json:"tier" validate:"required"`
}

// KustoPool is a Kusto pool of a Synapse workspace.
type KustoPool struct {
	TrackedResource
	SKU        AzureSKU             `json:"sku"`
	Properties *KustoPoolProperties `json:"properties,omitempty"`
	Etag       *string              `json:"etag,omitempty"`
	SystemData *SystemData          `json:"systemData,omitempty"`
}

// KustoPoolProperties are the read-mostly properties of a Kusto pool.
type KustoPoolProperties struct {
	State             *KustoPoolState            `json:"state,omitempty"`
	ProvisioningState *ResourceProvisioningState `json:"provisioningState,omitempty"`
	URI               *string                    `json:"uri,omitempty"`
	DataIngestionURI  *string                    `json:"dataIngestionUri,omitempty"`
	StateReason       *string                    `json:"stateReason,omitempty"`
	EngineType        *EngineType                `json:"engineType,omitempty"`
	WorkspaceUID      *string                    `json:"workspaceUid,omitempty"`
}

// Operation is one REST operation exposed by the resource provider.
type Operation struct {
	Name    *string           `json:"name,omitempty"`
	Display *OperationDisplay `json:"display,omitempty"`
	Origin  *string           `json:"origin,omitempty"`
	// Properties is provider specific and kept as received.
	Properties json.RawMessage `json:"properties,omitempty"`
}

// OperationDisplay is the localized description of an Operation.
type OperationDisplay struct {
	Provider    *string `json:"provider,omitempty"`
	Operation   *string `json:"operation,omitempty"`
	Resource    *string `json:"resource,omitempty"`
	Description *string `json:"description,omitempty"`
}
