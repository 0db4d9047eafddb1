package synapse

import "github.com/example/azmodels/pkg/paging"

var (
	// Kusto list operations return everything in one response.
	DataConnectionListResultPolicy = paging.Policy{Family: "synapse.DataConnectionListResult", Empty: paging.SinglePage}
	DatabaseListResultPolicy       = paging.Policy{Family: "synapse.DatabaseListResult", Empty: paging.SinglePage}
	KustoPoolListResultPolicy      = paging.Policy{Family: "synapse.KustoPoolListResult", Empty: paging.SinglePage}

	OperationListResultPolicy = paging.Policy{
		Family: "synapse.OperationListResult",
		Empty:  paging.EmptyIsToken,
		Review: "nextLink is passed through even when empty; the provider never documents whether \"\" ends the list",
	}
)

type DataConnectionListResult struct {
	Value DataConnectionClassificationArray `json:"value,omitempty"`
}

// ContinuationToken implements paging.Continuable. The list never continues.
func (l DataConnectionListResult) ContinuationToken() (string, bool) {
	return DataConnectionListResultPolicy.Next(nil)
}

type DatabaseListResult struct {
	Value DatabaseClassificationArray `json:"value,omitempty"`
}

// ContinuationToken implements paging.Continuable. The list never continues.
func (l DatabaseListResult) ContinuationToken() (string, bool) {
	return DatabaseListResultPolicy.Next(nil)
}

type KustoPoolListResult struct {
	Value []KustoPool `json:"value,omitempty" validate:"omitempty,dive"`
}

// ContinuationToken implements paging.Continuable. The list never continues.
func (l KustoPoolListResult) ContinuationToken() (string, bool) {
	return KustoPoolListResultPolicy.Next(nil)
}

type OperationListResult struct {
	Value    []Operation `json:"value,omitempty"`
	NextLink *string     `json:"nextLink,omitempty"`
}

// ContinuationToken implements paging.Continuable.
func (l OperationListResult) ContinuationToken() (string, bool) {
	return OperationListResultPolicy.Next(l.NextLink)
}
