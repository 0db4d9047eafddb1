package storage

import "github.com/example/azmodels/pkg/paging"

// reviewEmptyLink is attached to every Storage list policy. The service
// documents nextLink as present only when more pages exist and says nothing
// about an empty value, so "" is passed through as a token.
const reviewEmptyLink = "empty nextLink is followed as a token; the service contract does not say whether \"\" ends the list"

var (
	StorageAccountListResultPolicy  = paging.Policy{Family: "storage.StorageAccountListResult", Empty: paging.EmptyIsToken, Review: reviewEmptyLink}
	DeletedAccountListResultPolicy  = paging.Policy{Family: "storage.DeletedAccountListResult", Empty: paging.EmptyIsToken, Review: reviewEmptyLink}
	ListContainerItemsPolicy        = paging.Policy{Family: "storage.ListContainerItems", Empty: paging.EmptyIsToken, Review: reviewEmptyLink}
	EncryptionScopeListResultPolicy = paging.Policy{Family: "storage.EncryptionScopeListResult", Empty: paging.EmptyIsToken, Review: reviewEmptyLink}
)

// StorageAccountListResult is one page of storage accounts.
type StorageAccountListResult struct {
	Value    []StorageAccount `json:"value,omitempty" validate:"omitempty,dive"`
	NextLink *string          `json:"nextLink,omitempty"`
}

// ContinuationToken implements paging.Continuable.
func (l StorageAccountListResult) ContinuationToken() (string, bool) {
	return StorageAccountListResultPolicy.Next(l.NextLink)
}

type DeletedAccountListResult struct {
	Value    []DeletedAccount `json:"value,omitempty"`
	NextLink *string          `json:"nextLink,omitempty"`
}

func (l DeletedAccountListResult) ContinuationToken() (string, bool) {
	return DeletedAccountListResultPolicy.Next(l.NextLink)
}

// ListContainerItems is one page of blob containers.
type ListContainerItems struct {
	Value    []ListContainerItem `json:"value,omitempty"`
	NextLink *string             `json:"nextLink,omitempty"`
}

func (l ListContainerItems) ContinuationToken() (string, bool) {
	return ListContainerItemsPolicy.Next(l.NextLink)
}

type EncryptionScopeListResult struct {
	Value    []EncryptionScope `json:"value,omitempty"`
	NextLink *string           `json:"nextLink,omitempty"`
}

func (l EncryptionScopeListResult) ContinuationToken() (string, bool) {
	return EncryptionScopeListResultPolicy.Next(l.NextLink)
}
