package synapse

import (
	json "github.com/goccy/go-json"

	"github.com/example/azmodels/pkg/unions"
)

// DataConnection holds the fields shared by every data connection. Kind
// is the discriminator and is kept verbatim, known or not.
type DataConnection struct {
	ProxyResource
	Location   *string            `json:"location,omitempty"`
	Kind       DataConnectionKind `json:"kind"`
	SystemData *SystemData        `json:"systemData,omitempty"`
}

// DataConnectionClassification is implemented by every data connection
// variant, including UnknownDataConnection.
type DataConnectionClassification interface {
	unions.Discriminator
	GetDataConnection() *DataConnection
}

// DataConnectionCatalog decodes data connections. Unknown kinds decode into
// *UnknownDataConnection.
var DataConnectionCatalog = unions.NewOpenCatalog("synapse.DataConnection", "kind",
	func() DataConnectionClassification { return &UnknownDataConnection{} },
	func() DataConnectionClassification { return &EventHubDataConnection{} },
	func() DataConnectionClassification { return &EventGridDataConnection{} },
	func() DataConnectionClassification { return &IotHubDataConnection{} },
)

// UnmarshalDataConnectionClassification decodes one data connection.
func UnmarshalDataConnectionClassification(data []byte) (DataConnectionClassification, error) {
	return DataConnectionCatalog.Decode(data)
}

// DataConnectionClassificationArray is a JSON array of data connections.
type DataConnectionClassificationArray []DataConnectionClassification

// UnmarshalJSON decodes each element by its kind.
func (a *DataConnectionClassificationArray) UnmarshalJSON(data []byte) error {
	vs, err := DataConnectionCatalog.DecodeSlice(data)
	if err != nil {
		return err
	}
	*a = vs
	return nil
}

// EventHubDataConnection ingests from an event hub.
type EventHubDataConnection struct {
	DataConnection
	Properties *EventHubConnectionProperties `json:"properties,omitempty"`
}

// DiscriminatorValue returns "EventHub".
func (EventHubDataConnection) DiscriminatorValue() string { return string(DataConnectionKindEventHub) }

// GetDataConnection returns the shared data connection fields.
func (v *EventHubDataConnection) GetDataConnection() *DataConnection { return &v.DataConnection }

// MarshalJSON always writes the EventHub kind.
func (v EventHubDataConnection) MarshalJSON() ([]byte, error) {
	type plain EventHubDataConnection
	v.Kind = DataConnectionKindEventHub
	return unions.Marshal(plain(v))
}

// EventGridDataConnection ingests blobs announced through Event Grid.
type EventGridDataConnection struct {
	DataConnection
	Properties *EventGridConnectionProperties `json:"properties,omitempty"`
}

// DiscriminatorValue returns "EventGrid".
func (EventGridDataConnection) DiscriminatorValue() string {
	return string(DataConnectionKindEventGrid)
}

// GetDataConnection returns the shared data connection fields.
func (v *EventGridDataConnection) GetDataConnection() *DataConnection { return &v.DataConnection }

// MarshalJSON always writes the EventGrid kind.
func (v EventGridDataConnection) MarshalJSON() ([]byte, error) {
	type plain EventGridDataConnection
	v.Kind = DataConnectionKindEventGrid
	return unions.Marshal(plain(v))
}

// IotHubDataConnection ingests from an IoT hub.
type IotHubDataConnection struct {
	DataConnection
	Properties *IotHubConnectionProperties `json:"properties,omitempty"`
}

// DiscriminatorValue returns "IotHub".
func (IotHubDataConnection) DiscriminatorValue() string { return string(DataConnectionKindIotHub) }

// GetDataConnection returns the shared data connection fields.
func (v *IotHubDataConnection) GetDataConnection() *DataConnection { return &v.DataConnection }

// MarshalJSON always writes the IotHub kind.
func (v IotHubDataConnection) MarshalJSON() ([]byte, error) {
	type plain IotHubDataConnection
	v.Kind = DataConnectionKindIotHub
	return unions.Marshal(plain(v))
}

// UnknownDataConnection is a data connection of a kind added after this
// version. Its kind and properties are written back as received.
type UnknownDataConnection struct {
	DataConnection
	Properties json.RawMessage `json:"properties,omitempty"`
}

// DiscriminatorValue returns the kind as received.
func (v UnknownDataConnection) DiscriminatorValue() string { return string(v.Kind) }

// GetDataConnection returns the shared data connection fields.
func (v *UnknownDataConnection) GetDataConnection() *DataConnection { return &v.DataConnection }

// EventHubConnectionProperties configure an EventHubDataConnection.
type EventHubConnectionProperties struct {
	EventHubResourceID    string                     `json:"eventHubResourceId" validate:"required"`
	ConsumerGroup         string                     `json:"consumerGroup" validate:"required"`
	TableName             *string                    `json:"tableName,omitempty"`
	MappingRuleName       *string                    `json:"mappingRuleName,omitempty"`
	DataFormat            *EventHubDataFormat        `json:"dataFormat,omitempty"`
	EventSystemProperties []string                   `json:"eventSystemProperties,omitempty"`
	Compression           *Compression               `json:"compression,omitempty"`
	ProvisioningState     *ResourceProvisioningState `json:"provisioningState,omitempty"`
}

// EventGridConnectionProperties configure an EventGridDataConnection.
type EventGridConnectionProperties struct {
	StorageAccountResourceID string                     `json:"storageAccountResourceId" validate:"required"`
	EventHubResourceID       string                     `json:"eventHubResourceId" validate:"required"`
	ConsumerGroup            string                     `json:"consumerGroup" validate:"required"`
	TableName                *string                    `json:"tableName,omitempty"`
	MappingRuleName          *string                    `json:"mappingRuleName,omitempty"`
	DataFormat               *EventGridDataFormat       `json:"dataFormat,omitempty"`
	IgnoreFirstRecord        *bool                      `json:"ignoreFirstRecord,omitempty"`
	BlobStorageEventType     *BlobStorageEventType      `json:"blobStorageEventType,omitempty"`
	ProvisioningState        *ResourceProvisioningState `json:"provisioningState,omitempty"`
}

// IotHubConnectionProperties configure an IotHubDataConnection.
type IotHubConnectionProperties struct {
	IotHubResourceID       string                     `json:"iotHubResourceId" validate:"required"`
	ConsumerGroup          string                     `json:"consumerGroup" validate:"required"`
	TableName              *string                    `json:"tableName,omitempty"`
	MappingRuleName        *string                    `json:"mappingRuleName,omitempty"`
	DataFormat             *IotHubDataFormat          `json:"dataFormat,omitempty"`
	EventSystemProperties  []string                   `json:"eventSystemProperties,omitempty"`
	SharedAccessPolicyName string                     `json:"sharedAccessPolicyName" validate:"required"`
	ProvisioningState      *ResourceProvisioningState `json:"provisioningState,omitempty"`
}
