package synapse

import (
	json "github.com/goccy/go-json"

	"github.com/example/azmodels/pkg/unions"
)

// Database holds the fields shared by every Kusto database.
type Database struct {
	ProxyResource
	Location   *string      `json:"location,omitempty"`
	Kind       DatabaseKind `json:"kind"`
	SystemData *SystemData  `json:"systemData,omitempty"`
}

// DatabaseClassification is implemented by every database variant,
// including UnknownDatabase.
type DatabaseClassification interface {
	unions.Discriminator
	GetDatabase() *Database
}

// DatabaseCatalog decodes databases. Unknown kinds decode into
// *UnknownDatabase.
var DatabaseCatalog = unions.NewOpenCatalog("synapse.Database", "kind",
	func() DatabaseClassification { return &UnknownDatabase{} },
	func() DatabaseClassification { return &ReadWriteDatabase{} },
	func() DatabaseClassification { return &ReadOnlyFollowingDatabase{} },
)

// UnmarshalDatabaseClassification decodes one database.
func UnmarshalDatabaseClassification(data []byte) (DatabaseClassification, error) {
	return DatabaseCatalog.Decode(data)
}

// DatabaseClassificationArray is a JSON array of databases.
type DatabaseClassificationArray []DatabaseClassification

// UnmarshalJSON decodes each element by its kind.
func (a *DatabaseClassificationArray) UnmarshalJSON(data []byte) error {
	vs, err := DatabaseCatalog.DecodeSlice(data)
	if err != nil {
		return err
	}
	*a = vs
	return nil
}

// ReadWriteDatabase is a database owned by the pool.
type ReadWriteDatabase struct {
	Database
	Properties *ReadWriteDatabaseProperties `json:"properties,omitempty"`
}

// DiscriminatorValue returns "ReadWrite".
func (ReadWriteDatabase) DiscriminatorValue() string { return string(DatabaseKindReadWrite) }

// GetDatabase returns the shared database fields.
func (v *ReadWriteDatabase) GetDatabase() *Database { return &v.Database }

// MarshalJSON always writes the ReadWrite kind.
func (v ReadWriteDatabase) MarshalJSON() ([]byte, error) {
	type plain ReadWriteDatabase
	v.Kind = DatabaseKindReadWrite
	return unions.Marshal(plain(v))
}

// ReadOnlyFollowingDatabase is a database attached from a leader cluster.
type ReadOnlyFollowingDatabase struct {
	Database
	Properties *ReadOnlyFollowingDatabaseProperties `json:"properties,omitempty"`
}

// DiscriminatorValue returns "ReadOnlyFollowing".
func (ReadOnlyFollowingDatabase) DiscriminatorValue() string {
	return string(DatabaseKindReadOnlyFollowing)
}

// GetDatabase returns the shared database fields.
func (v *ReadOnlyFollowingDatabase) GetDatabase() *Database { return &v.Database }

// MarshalJSON always writes the ReadOnlyFollowing kind.
func (v ReadOnlyFollowingDatabase) MarshalJSON() ([]byte, error) {
	type plain ReadOnlyFollowingDatabase
	v.Kind = DatabaseKindReadOnlyFollowing
	return unions.Marshal(plain(v))
}

// UnknownDatabase is a database of a kind added after this version.
type UnknownDatabase struct {
	Database
	Properties json.RawMessage `json:"properties,omitempty"`
}

// DiscriminatorValue returns the kind as received.
func (v UnknownDatabase) DiscriminatorValue() string { return string(v.Kind) }

// GetDatabase returns the shared database fields.
func (v *UnknownDatabase) GetDatabase() *Database { return &v.Database }

// ReadWriteDatabaseProperties describe a ReadWriteDatabase.
type ReadWriteDatabaseProperties struct {
	ProvisioningState *ResourceProvisioningState `json:"provisioningState,omitempty"`
	SoftDeletePeriod  *string                    `json:"softDeletePeriod,omitempty"`
	HotCachePeriod    *string                    `json:"hotCachePeriod,omitempty"`
	Statistics        *DatabaseStatistics        `json:"statistics,omitempty"`
	IsFollowed        *bool                      `json:"isFollowed,omitempty"`
}

// ReadOnlyFollowingDatabaseProperties describe a ReadOnlyFollowingDatabase.
type ReadOnlyFollowingDatabaseProperties struct {
	ProvisioningState                 *ResourceProvisioningState          `json:"provisioningState,omitempty"`
	SoftDeletePeriod                  *string                             `json:"softDeletePeriod,omitempty"`
	HotCachePeriod                    *string                             `json:"hotCachePeriod,omitempty"`
	Statistics                        *DatabaseStatistics                 `json:"statistics,omitempty"`
	LeaderClusterResourceID           *string                             `json:"leaderClusterResourceId,omitempty"`
	AttachedDatabaseConfigurationName *string                             `json:"attachedDatabaseConfigurationName,omitempty"`
	PrincipalsModificationKind        *DatabasePrincipalsModificationKind `json:"principalsModificationKind,omitempty"`
}

// DatabaseStatistics reports the size of a database in bytes.
type DatabaseStatistics struct {
	Size *float64 `json:"size,omitempty"`
}
