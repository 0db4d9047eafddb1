package purview

import "time"

// DataSourceProperties are the properties every data source carries.
type DataSourceProperties struct {
	CreatedAt                       *time.Time                       `json:"createdAt,omitempty"`
	LastModifiedAt                  *time.Time                       `json:"lastModifiedAt,omitempty"`
	Collection                      *CollectionReference             `json:"collection,omitempty"`
	DataSourceCollectionMovingState *DataSourceCollectionMovingState `json:"dataSourceCollectionMovingState,omitempty"`
}

// AzureDataSourceProperties locate a data source hosted in an Azure
// subscription.
type AzureDataSourceProperties struct {
	DataSourceProperties
	ResourceGroup     *string            `json:"resourceGroup,omitempty"`
	SubscriptionID    *string            `json:"subscriptionId,omitempty"`
	Location          *string            `json:"location,omitempty"`
	ResourceName      *string            `json:"resourceName,omitempty"`
	ResourceID        *string            `json:"resourceId,omitempty"`
	DataUseGovernance *DataUseGovernance `json:"dataUseGovernance,omitempty"`
}

// AzureEndpointProperties are used by Azure sources reached through a
// single service endpoint.
type AzureEndpointProperties struct {
	AzureDataSourceProperties
	Endpoint *string `json:"endpoint,omitempty"`
}

// AzureSQLServerProperties are shared by the SQL Server flavoured sources.
type AzureSQLServerProperties struct {
	AzureDataSourceProperties
	ServerEndpoint *string `json:"serverEndpoint,omitempty"`
}

// AzureServerPortProperties are shared by Azure MySQL and PostgreSQL.
type AzureServerPortProperties struct {
	AzureDataSourceProperties
	ServerEndpoint *string `json:"serverEndpoint,omitempty"`
	Port           *int32  `json:"port,omitempty"`
}

type AzureCosmosDBProperties struct {
	AzureDataSourceProperties
	AccountURI *string `json:"accountUri,omitempty"`
}

type AzureSynapseProperties struct {
	AzureDataSourceProperties
	SQLEndpoint         *string `json:"sqlEndpoint,omitempty"`
	SQLOnDemandEndpoint *string `json:"sqlOnDemandEndpoint,omitempty"`
}

type AzureSynapseWorkspaceProperties struct {
	AzureDataSourceProperties
	DedicatedSQLEndpoint  *string `json:"dedicatedSqlEndpoint,omitempty"`
	ServerlessSQLEndpoint *string `json:"serverlessSqlEndpoint,omitempty"`
}

type AzureResourceGroupProperties struct {
	DataSourceProperties
	SubscriptionID    *string            `json:"subscriptionId,omitempty"`
	ResourceGroup     *string            `json:"resourceGroup,omitempty"`
	ResourceID        *string            `json:"resourceId,omitempty"`
	DataUseGovernance *DataUseGovernance `json:"dataUseGovernance,omitempty"`
}

type AzureSubscriptionProperties struct {
	DataSourceProperties
	SubscriptionID    *string            `json:"subscriptionId,omitempty"`
	ResourceID        *string            `json:"resourceId,omitempty"`
	DataUseGovernance *DataUseGovernance `json:"dataUseGovernance,omitempty"`
}

type AmazonAccountProperties struct {
	DataSourceProperties
	AWSAccountID *string `json:"awsAccountId,omitempty"`
	RoleARN      *string `json:"roleARN,omitempty"`
}

type AmazonS3Properties struct {
	DataSourceProperties
	ServiceURL *string `json:"serviceUrl,omitempty"`
	RoleARN    *string `json:"roleARN,omitempty"`
}

// AmazonServerProperties are shared by the Amazon RDS sources.
type AmazonServerProperties struct {
	DataSourceProperties
	ServerEndpoint         *string `json:"serverEndpoint,omitempty"`
	Port                   *int32  `json:"port,omitempty"`
	VpcEndpointServiceName *string `json:"vpcEndpointServiceName,omitempty"`
}

// OracleProperties keep the port as the string the service sends.
type OracleProperties struct {
	DataSourceProperties
	Host    *string `json:"host,omitempty"`
	Port    *string `json:"port,omitempty"`
	Service *string `json:"service,omitempty"`
}

type PowerBIProperties struct {
	DataSourceProperties
	Tenant *string `json:"tenant,omitempty"`
}

// SapProperties are shared by SAP ECC and SAP S/4HANA.
type SapProperties struct {
	DataSourceProperties
	ApplicationServer *string `json:"applicationServer,omitempty"`
	SystemNumber      *string `json:"systemNumber,omitempty"`
}

type TeradataProperties struct {
	DataSourceProperties
	Host *string `json:"host,omitempty"`
}

// ScanProperties are the properties every scan carries.
type ScanProperties struct {
	ScanRulesetName     *string              `json:"scanRulesetName,omitempty"`
	BusinessRuleSetName *string              `json:"businessRuleSetName,omitempty"`
	ScanRulesetType     *ScanRulesetType     `json:"scanRulesetType,omitempty"`
	Collection          *CollectionReference `json:"collection,omitempty"`
	Domain              *string              `json:"domain,omitempty"`
	Workers             *int32               `json:"workers,omitempty"`
	CreatedAt           *time.Time           `json:"createdAt,omitempty"`
	LastModifiedAt      *time.Time           `json:"lastModifiedAt,omitempty"`
	ConnectedVia        *ConnectedVia        `json:"connectedVia,omitempty"`
	IsPresetScan        *bool                `json:"isPresetScan,omitempty"`
	IsLiveViewEnabled   *bool                `json:"isLiveViewEnabled,omitempty"`
	ParallelScanCount   *int32               `json:"parallelScanCount,omitempty"`
	LogLevel            *string              `json:"logLevel,omitempty"`
}

// CredentialScanProperties authenticate a scan with a stored credential.
type CredentialScanProperties struct {
	ScanProperties
	Credential *CredentialReference `json:"credential,omitempty"`
}

// ExpandingResourceScanProperties scan a container resource and the
// resources discovered inside it.
type ExpandingResourceScanProperties struct {
	ScanProperties
	ResourceTypes *ResourceTypes       `json:"resourceTypes,omitempty"`
	Credential    *CredentialReference `json:"credential,omitempty"`
}

// ResourceTypes selects, per discovered resource type, the ruleset and
// credential used to scan it.
type ResourceTypes struct {
	None                            *ResourceTypeFilter `json:"none,omitempty"`
	AzureSubscription               *ResourceTypeFilter `json:"azureSubscription,omitempty"`
	AzureResourceGroup              *ResourceTypeFilter `json:"azureResourceGroup,omitempty"`
	AzureSynapseWorkspace           *ResourceTypeFilter `json:"azureSynapseWorkspace,omitempty"`
	AzureSynapse                    *ResourceTypeFilter `json:"azureSynapse,omitempty"`
	AdlsGen1                        *ResourceTypeFilter `json:"adlsGen1,omitempty"`
	AdlsGen2                        *ResourceTypeFilter `json:"adlsGen2,omitempty"`
	AmazonAccount                   *ResourceTypeFilter `json:"amazonAccount,omitempty"`
	AmazonS3                        *ResourceTypeFilter `json:"amazonS3,omitempty"`
	AmazonSQL                       *ResourceTypeFilter `json:"amazonSql,omitempty"`
	AzureCosmosDB                   *ResourceTypeFilter `json:"azureCosmosDb,omitempty"`
	AzureDataExplorer               *ResourceTypeFilter `json:"azureDataExplorer,omitempty"`
	AzureFileService                *ResourceTypeFilter `json:"azureFileService,omitempty"`
	AzureSQLDatabase                *ResourceTypeFilter `json:"azureSqlDatabase,omitempty"`
	AmazonPostgreSQL                *ResourceTypeFilter `json:"amazonPostgreSql,omitempty"`
	AzurePostgreSQL                 *ResourceTypeFilter `json:"azurePostgreSql,omitempty"`
	SQLServerDatabase               *ResourceTypeFilter `json:"sqlServerDatabase,omitempty"`
	AzureSQLDatabaseManagedInstance *ResourceTypeFilter `json:"azureSqlDatabaseManagedInstance,omitempty"`
	AzureSQLDataWarehouse           *ResourceTypeFilter `json:"azureSqlDataWarehouse,omitempty"`
	AzureMySQL                      *ResourceTypeFilter `json:"azureMySql,omitempty"`
	AzureStorage                    *ResourceTypeFilter `json:"azureStorage,omitempty"`
	Teradata                        *ResourceTypeFilter `json:"teradata,omitempty"`
	Oracle                          *ResourceTypeFilter `json:"oracle,omitempty"`
	SapS4Hana                       *ResourceTypeFilter `json:"sapS4Hana,omitempty"`
	SapEcc                          *ResourceTypeFilter `json:"sapEcc,omitempty"`
	PowerBI                         *ResourceTypeFilter `json:"powerBI,omitempty"`
}

type ResourceTypeFilter struct {
	ScanRulesetName    *string              `json:"scanRulesetName,omitempty"`
	ScanRulesetType    *ScanRulesetType     `json:"scanRulesetType,omitempty"`
	ResourceNameFilter *ResourceNameFilter  `json:"resourceNameFilter,omitempty"`
	Credential         *CredentialReference `json:"credential,omitempty"`
}

type ResourceNameFilter struct {
	ExcludePrefixes []string `json:"excludePrefixes,omitempty"`
	IncludePrefixes []string `json:"includePrefixes,omitempty"`
	Resources       []string `json:"resources,omitempty"`
}

// AmazonServerScanProperties are shared by the Amazon RDS scans.
type AmazonServerScanProperties struct {
	ScanProperties
	Credential             *CredentialReference `json:"credential,omitempty"`
	ServerEndpoint         *string              `json:"serverEndpoint,omitempty"`
	DatabaseName           *string              `json:"databaseName,omitempty"`
	Port                   *int32               `json:"port,omitempty"`
	VpcEndpointServiceName *string              `json:"vpcEndpointServiceName,omitempty"`
}

// AmazonS3ScanProperties are shared by the credential and role ARN scans of
// an S3 bucket.
type AmazonS3ScanProperties struct {
	ScanProperties
	Credential *CredentialReference `json:"credential,omitempty"`
	RoleARN    *string              `json:"roleARN,omitempty"`
	IsMauiScan *bool                `json:"isMauiScan,omitempty"`
}

type AzureCosmosDBScanProperties struct {
	ScanProperties
	Credential   *CredentialReference `json:"credential,omitempty"`
	DatabaseName *string              `json:"databaseName,omitempty"`
}

type AzureDataExplorerScanProperties struct {
	ScanProperties
	Credential *CredentialReference `json:"credential,omitempty"`
	Database   *string              `json:"database,omitempty"`
}

type AzureFileServiceScanProperties struct {
	ScanProperties
	Credential *CredentialReference `json:"credential,omitempty"`
	ShareName  *string              `json:"shareName,omitempty"`
}

type AzureMySQLScanProperties struct {
	ScanProperties
	ServerEndpoint *string              `json:"serverEndpoint,omitempty"`
	Port           *int32               `json:"port,omitempty"`
	DatabaseName   *string              `json:"databaseName,omitempty"`
	Credential     *CredentialReference `json:"credential,omitempty"`
}

type AzurePostgreSQLScanProperties struct {
	ScanProperties
	Credential     *CredentialReference `json:"credential,omitempty"`
	ServerEndpoint *string              `json:"serverEndpoint,omitempty"`
	DatabaseName   *string              `json:"databaseName,omitempty"`
	Port           *int32               `json:"port,omitempty"`
	SSLMode        *int32               `json:"sslMode,omitempty"`
}

// AzureSQLScanProperties are shared by the SQL Server flavoured scans. MSI
// scans leave Credential unset.
type AzureSQLScanProperties struct {
	ScanProperties
	ServerEndpoint *string              `json:"serverEndpoint,omitempty"`
	DatabaseName   *string              `json:"databaseName,omitempty"`
	Credential     *CredentialReference `json:"credential,omitempty"`
}

// MitiScanProperties tune the self-hosted scanner used for Oracle, SAP and
// Teradata.
type MitiScanProperties struct {
	ScanProperties
	MaximumMemoryAllowedInGb *string `json:"maximumMemoryAllowedInGb,omitempty"`
	MitiCache                *string `json:"mitiCache,omitempty"`
}

type MitiCredentialScanProperties struct {
	MitiScanProperties
	Credential             *CredentialReference `json:"credential,omitempty"`
	Schema                 *string              `json:"schema,omitempty"`
	DriverLocation         *string              `json:"driverLocation,omitempty"`
	StoredProcedureDetails *string              `json:"storedProcedureDetails,omitempty"`
}

type MitiUserPassScanProperties struct {
	MitiScanProperties
	Username       *string `json:"username,omitempty"`
	Password       *string `json:"password,omitempty"`
	Schema         *string `json:"schema,omitempty"`
	DriverLocation *string `json:"driverLocation,omitempty"`
}

type SapCredentialScanProperties struct {
	MitiScanProperties
	ClientID       *string              `json:"clientId,omitempty"`
	Credential     *CredentialReference `json:"credential,omitempty"`
	JCoLibraryPath *string              `json:"jCoLibraryPath,omitempty"`
}

type SapUserPassScanProperties struct {
	MitiScanProperties
	ClientID       *string `json:"clientId,omitempty"`
	Username       *string `json:"username,omitempty"`
	Password       *string `json:"password,omitempty"`
	JCoLibraryPath *string `json:"jCoLibraryPath,omitempty"`
}

type PowerBIDelegatedScanProperties struct {
	ScanProperties
	Tenant                    *string `json:"tenant,omitempty"`
	AuthenticationType        *string `json:"authenticationType,omitempty"`
	ClientID                  *string `json:"clientId,omitempty"`
	UserName                  *string `json:"userName,omitempty"`
	Password                  *string `json:"password,omitempty"`
	IncludePersonalWorkspaces *bool   `json:"includePersonalWorkspaces,omitempty"`
}

type PowerBIMSIScanProperties struct {
	ScanProperties
	IncludePersonalWorkspaces *bool `json:"includePersonalWorkspaces,omitempty"`
}

type UserPassScanProperties struct {
	ScanProperties
	Username *string `json:"username,omitempty"`
	Password *string `json:"password,omitempty"`
}

// ScanRulesetProperties are the properties every ruleset carries.
type ScanRulesetProperties struct {
	CreatedAt                             *time.Time `json:"createdAt,omitempty"`
	Description                           *string    `json:"description,omitempty"`
	ExcludedSystemClassifications         []string   `json:"excludedSystemClassifications,omitempty"`
	IncludedCustomClassificationRuleNames []string   `json:"includedCustomClassificationRuleNames,omitempty"`
	LastModifiedAt                        *time.Time `json:"lastModifiedAt,omitempty"`
}

// ScanningRuleScanRulesetProperties add file type selection for sources
// that store files.
type ScanningRuleScanRulesetProperties struct {
	ScanRulesetProperties
	ScanningRule *ScanningRule `json:"scanningRule,omitempty"`
}

type ScanningRule struct {
	FileExtensions       []string              `json:"fileExtensions,omitempty"`
	CustomFileExtensions []CustomFileExtension `json:"customFileExtensions,omitempty"`
}

type CustomFileExtension struct {
	CustomFileType *CustomFileType `json:"customFileType,omitempty"`
	Description    *string         `json:"description,omitempty"`
	Enabled        *bool           `json:"enabled,omitempty"`
	FileExtension  *string         `json:"fileExtension,omitempty"`
}

type CustomFileType struct {
	BuiltInType     *BuiltInType `json:"builtInType,omitempty"`
	CustomDelimiter *string      `json:"customDelimiter,omitempty"`
}

type AccountKeyCredentialProperties struct {
	TypeProperties *AccountKeyCredentialTypeProperties `json:"typeProperties,omitempty"`
	Description    *string                             `json:"description,omitempty"`
}

type AccountKeyCredentialTypeProperties struct {
	AccountKey *KeyVaultSecret `json:"accountKey,omitempty"`
}

// UserPassCredentialProperties are shared by basic and SQL authentication.
type UserPassCredentialProperties struct {
	TypeProperties *UserPassCredentialTypeProperties `json:"typeProperties,omitempty"`
	Description    *string                           `json:"description,omitempty"`
}

type UserPassCredentialTypeProperties struct {
	User     *string         `json:"user,omitempty"`
	Password *KeyVaultSecret `json:"password,omitempty"`
}

type ConsumerKeyCredentialProperties struct {
	TypeProperties *ConsumerKeyCredentialTypeProperties `json:"typeProperties,omitempty"`
	Description    *string                              `json:"description,omitempty"`
}

type ConsumerKeyCredentialTypeProperties struct {
	User           *string         `json:"user,omitempty"`
	Password       *KeyVaultSecret `json:"password,omitempty"`
	ConsumerKey    *string         `json:"consumerKey,omitempty"`
	ConsumerSecret *KeyVaultSecret `json:"consumerSecret,omitempty"`
}

type DelegatedAuthCredentialProperties struct {
	TypeProperties *DelegatedAuthCredentialTypeProperties `json:"typeProperties,omitempty"`
	Description    *string                                `json:"description,omitempty"`
}

type DelegatedAuthCredentialTypeProperties struct {
	ClientID *string         `json:"clientId,omitempty"`
	User     *string         `json:"user,omitempty"`
	Password *KeyVaultSecret `json:"password,omitempty"`
}

type ManagedIdentityCredentialProperties struct {
	TypeProperties *ManagedIdentityCredentialTypeProperties `json:"typeProperties,omitempty"`
	Description    *string                                  `json:"description,omitempty"`
}

type ManagedIdentityCredentialTypeProperties struct {
	PrincipalID *string `json:"principalId,omitempty"`
	TenantID    *string `json:"tenantId,omitempty"`
	ResourceID  *string `json:"resourceId,omitempty"`
}

type RoleARNCredentialProperties struct {
	TypeProperties *RoleARNCredentialTypeProperties `json:"typeProperties,omitempty"`
	Description    *string                          `json:"description,omitempty"`
}

type RoleARNCredentialTypeProperties struct {
	RoleARN *string `json:"roleARN,omitempty"`
}

type ServicePrincipalCredentialProperties struct {
	TypeProperties *ServicePrincipalCredentialTypeProperties `json:"typeProperties,omitempty"`
	Description    *string                                   `json:"description,omitempty"`
}

type ServicePrincipalCredentialTypeProperties struct {
	ServicePrincipalID  *string         `json:"servicePrincipalId,omitempty"`
	ServicePrincipalKey *KeyVaultSecret `json:"servicePrincipalKey,omitempty"`
	Tenant              *string         `json:"tenant,omitempty"`
}

type ManagedIntegrationRuntimeProperties struct {
	TypeProperties                 *ManagedIntegrationRuntimeTypeProperties `json:"typeProperties,omitempty"`
	ManagedVirtualNetworkReference *ManagedVirtualNetworkReference          `json:"managedVirtualNetworkReference,omitempty"`
	Description                    *string                                  `json:"description,omitempty"`
}

type ManagedIntegrationRuntimeTypeProperties struct {
	ComputeProperties *ComputeProperties `json:"computeProperties,omitempty"`
}

type ComputeProperties struct {
	Location *string `json:"location,omitempty"`
}

type ManagedVirtualNetworkReference struct {
	ReferenceName *string `json:"referenceName,omitempty"`
	Type          *string `json:"type,omitempty"`
}

type SelfHostedIntegrationRuntimeProperties struct {
	Description *string `json:"description,omitempty"`
}

// SystemClassificationRuleProperties are the properties of a rule shipped
// with the service.
type SystemClassificationRuleProperties struct {
	Description        *string                   `json:"description,omitempty"`
	Version            *int32                    `json:"version,omitempty"`
	ClassificationName *string                   `json:"classificationName,omitempty"`
	RuleStatus         *ClassificationRuleStatus `json:"ruleStatus,omitempty"`
	CreatedAt          *time.Time                `json:"createdAt,omitempty"`
	LastModifiedAt     *time.Time                `json:"lastModifiedAt,omitempty"`
}

// CustomClassificationRuleProperties match columns and data with nested
// pattern unions.
type CustomClassificationRuleProperties struct {
	SystemClassificationRuleProperties
	MinimumPercentageMatch *float64                                     `json:"minimumPercentageMatch,omitempty"`
	ClassificationAction   *ClassificationAction                        `json:"classificationAction,omitempty"`
	DataPatterns           ClassificationRulePatternClassificationArray `json:"dataPatterns,omitempty"`
	ColumnPatterns         ClassificationRulePatternClassificationArray `json:"columnPatterns,omitempty"`
}
