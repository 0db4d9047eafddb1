package registry

import (
	"github.com/example/azmodels/pkg/models/purview"
	"github.com/example/azmodels/pkg/models/storage"
	"github.com/example/azmodels/pkg/models/synapse"
)

func purviewEntries() []Entry {
	return []Entry{
		family(purview.DataSourceCatalog),
		family(purview.ScanCatalog),
		family(purview.ScanRulesetCatalog),
		family(purview.SystemScanRulesetCatalog),
		family(purview.CredentialCatalog),
		family(purview.IntegrationRuntimeCatalog),
		family(purview.ClassificationRuleCatalog),
		family(purview.ClassificationRulePatternCatalog),

		page(purview.DataSourceListPolicy, func(l purview.DataSourceList) []purview.DataSourceClassification { return l.Value }),
		page(purview.ScanListPolicy, func(l purview.ScanList) []purview.ScanClassification { return l.Value }),
		page(purview.ScanHistoryListPolicy, func(l purview.ScanHistoryList) []purview.ScanResult { return l.Value }),
		page(purview.ScanRulesetListPolicy, func(l purview.ScanRulesetList) []purview.ScanRulesetClassification { return l.Value }),
		page(purview.SystemScanRulesetListPolicy, func(l purview.SystemScanRulesetList) []purview.SystemScanRulesetClassification {
			return l.Value
		}),
		page(purview.CredentialListPolicy, func(l purview.CredentialList) []purview.CredentialClassification { return l.Value }),
		page(purview.IntegrationRuntimeListPolicy, func(l purview.IntegrationRuntimeList) []purview.IntegrationRuntimeClassification {
			return l.Value
		}),
		page(purview.ClassificationRuleListPolicy, func(l purview.ClassificationRuleList) []purview.ClassificationRuleClassification {
			return l.Value
		}),

		model[purview.ScanResult]("purview.ScanResult"),
		model[purview.ErrorResponseModel]("purview.ErrorResponseModel"),
	}
}

func synapseEntries() []Entry {
	return []Entry{
		family(synapse.DataConnectionCatalog),
		family(synapse.DatabaseCatalog),

		page(synapse.DataConnectionListResultPolicy, func(l synapse.DataConnectionListResult) []synapse.DataConnectionClassification {
			return l.Value
		}),
		page(synapse.DatabaseListResultPolicy, func(l synapse.DatabaseListResult) []synapse.DatabaseClassification { return l.Value }),
		page(synapse.KustoPoolListResultPolicy, func(l synapse.KustoPoolListResult) []synapse.KustoPool { return l.Value }),
		page(synapse.OperationListResultPolicy, func(l synapse.OperationListResult) []synapse.Operation { return l.Value }),

		model[synapse.KustoPool]("synapse.KustoPool"),
		model[synapse.ErrorResponse]("synapse.ErrorResponse"),
	}
}

func storageEntries() []Entry {
	return []Entry{
		page(storage.StorageAccountListResultPolicy, func(l storage.StorageAccountListResult) []storage.StorageAccount { return l.Value }),
		page(storage.DeletedAccountListResultPolicy, func(l storage.DeletedAccountListResult) []storage.DeletedAccount { return l.Value }),
		page(storage.ListContainerItemsPolicy, func(l storage.ListContainerItems) []storage.ListContainerItem { return l.Value }),
		page(storage.EncryptionScopeListResultPolicy, func(l storage.EncryptionScopeListResult) []storage.EncryptionScope {
			return l.Value
		}),

		model[storage.StorageAccount]("storage.StorageAccount"),
		model[storage.Identity]("storage.Identity"),
		model[storage.DeletedAccount]("storage.DeletedAccount"),
		model[storage.ListContainerItem]("storage.ListContainerItem"),
		model[storage.EncryptionScope]("storage.EncryptionScope"),
		model[storage.ErrorResponse]("storage.ErrorResponse"),
	}
}
