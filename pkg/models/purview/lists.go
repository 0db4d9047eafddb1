package purview

import "github.com/example/azmodels/pkg/paging"

// The scanning service omits nextLink on the last page and sometimes sends
// it empty; both end paging.
var (
	DataSourceListPolicy         = paging.Policy{Family: "purview.DataSourceList", Empty: paging.EmptyEndsPaging}
	ScanListPolicy               = paging.Policy{Family: "purview.ScanList", Empty: paging.EmptyEndsPaging}
	ScanHistoryListPolicy        = paging.Policy{Family: "purview.ScanHistoryList", Empty: paging.EmptyEndsPaging}
	ScanRulesetListPolicy        = paging.Policy{Family: "purview.ScanRulesetList", Empty: paging.EmptyEndsPaging}
	SystemScanRulesetListPolicy  = paging.Policy{Family: "purview.SystemScanRulesetList", Empty: paging.EmptyEndsPaging}
	CredentialListPolicy         = paging.Policy{Family: "purview.CredentialList", Empty: paging.EmptyEndsPaging}
	IntegrationRuntimeListPolicy = paging.Policy{Family: "purview.IntegrationRuntimeList", Empty: paging.EmptyEndsPaging}
	ClassificationRuleListPolicy = paging.Policy{Family: "purview.ClassificationRuleList", Empty: paging.EmptyEndsPaging}
)

// DataSourceList is one page of data sources.
type DataSourceList struct {
	Value    DataSourceClassificationArray `json:"value" validate:"required"`
	NextLink *string                       `json:"nextLink,omitempty"`
	Count    *int64                        `json:"count,omitempty"`
}

// ContinuationToken implements paging.Continuable.
func (l DataSourceList) ContinuationToken() (string, bool) {
	return DataSourceListPolicy.Next(l.NextLink)
}

// ScanList is one page of scans.
type ScanList struct {
	Value    ScanClassificationArray `json:"value" validate:"required"`
	NextLink *string                 `json:"nextLink,omitempty"`
	Count    *int64                  `json:"count,omitempty"`
}

// ContinuationToken implements paging.Continuable.
func (l ScanList) ContinuationToken() (string, bool) {
	return ScanListPolicy.Next(l.NextLink)
}

// ScanHistoryList is one page of scan runs.
type ScanHistoryList struct {
	Value    []ScanResult `json:"value" validate:"required"`
	NextLink *string      `json:"nextLink,omitempty"`
	Count    *int64       `json:"count,omitempty"`
}

// ContinuationToken implements paging.Continuable.
func (l ScanHistoryList) ContinuationToken() (string, bool) {
	return ScanHistoryListPolicy.Next(l.NextLink)
}

// ScanRulesetList is one page of custom scan rulesets.
type ScanRulesetList struct {
	Value    ScanRulesetClassificationArray `json:"value" validate:"required"`
	NextLink *string                        `json:"nextLink,omitempty"`
	Count    *int64                         `json:"count,omitempty"`
}

// ContinuationToken implements paging.Continuable.
func (l ScanRulesetList) ContinuationToken() (string, bool) {
	return ScanRulesetListPolicy.Next(l.NextLink)
}

// SystemScanRulesetList is one page of system scan rulesets.
type SystemScanRulesetList struct {
	Value    SystemScanRulesetClassificationArray `json:"value" validate:"required"`
	NextLink *string                              `json:"nextLink,omitempty"`
	Count    *int64                               `json:"count,omitempty"`
}

// ContinuationToken implements paging.Continuable.
func (l SystemScanRulesetList) ContinuationToken() (string, bool) {
	return SystemScanRulesetListPolicy.Next(l.NextLink)
}

// CredentialList is one page of credentials.
type CredentialList struct {
	Value    CredentialClassificationArray `json:"value" validate:"required"`
	NextLink *string                       `json:"nextLink,omitempty"`
	Count    *int64                        `json:"count,omitempty"`
}

// ContinuationToken implements paging.Continuable.
func (l CredentialList) ContinuationToken() (string, bool) {
	return CredentialListPolicy.Next(l.NextLink)
}

// IntegrationRuntimeList is one page of integration runtimes.
type IntegrationRuntimeList struct {
	Value    IntegrationRuntimeClassificationArray `json:"value" validate:"required"`
	NextLink *string                               `json:"nextLink,omitempty"`
	Count    *int64                                `json:"count,omitempty"`
}

// ContinuationToken implements paging.Continuable.
func (l IntegrationRuntimeList) ContinuationToken() (string, bool) {
	return IntegrationRuntimeListPolicy.Next(l.NextLink)
}

// ClassificationRuleList is one page of classification rules.
type ClassificationRuleList struct {
	Value    ClassificationRuleClassificationArray `json:"value" validate:"required"`
	NextLink *string                               `json:"nextLink,omitempty"`
	Count    *int64                                `json:"count,omitempty"`
}

// ContinuationToken implements paging.Continuable.
func (l ClassificationRuleList) ContinuationToken() (string, bool) {
	return ClassificationRuleListPolicy.Next(l.NextLink)
}
