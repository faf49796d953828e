package metadata

// ConnectionProperties describe how a connector reaches a resource
type ConnectionProperties struct {
	ReferenceableProperties
	DisplayName             string            `json:"displayName,omitempty"`
	Description             string            `json:"description,omitempty"`
	SecuredProperties       map[string]string `json:"securedProperties,omitempty"`
	ConfigurationProperties map[string]any    `json:"configurationProperties,omitempty"`
	UserID                  string            `json:"userId,omitempty"`
	ClearPassword           string            `json:"clearPassword,omitempty"`
	EncryptedPassword       string            `json:"encryptedPassword,omitempty"`
}

// ConnectorTypeProperties describe a connector implementation
type ConnectorTypeProperties struct {
	ReferenceableProperties
	DisplayName                    string   `json:"displayName,omitempty"`
	Description                    string   `json:"description,omitempty"`
	SupportedAssetTypeName         string   `json:"supportedAssetTypeName,omitempty"`
	ExpectedDataFormat             string   `json:"expectedDataFormat,omitempty"`
	ConnectorProviderClassName     string   `json:"connectorProviderClassName,omitempty"`
	ConnectorFrameworkName         string   `json:"connectorFrameworkName,omitempty"`
	ConnectorInterfaceLanguage     string   `json:"connectorInterfaceLanguage,omitempty"`
	ConnectorInterfaces            []string `json:"connectorInterfaces,omitempty"`
	TargetTechnologySource         string   `json:"targetTechnologySource,omitempty"`
	TargetTechnologyName           string   `json:"targetTechnologyName,omitempty"`
	TargetTechnologyInterfaces     []string `json:"targetTechnologyInterfaces,omitempty"`
	TargetTechnologyVersions       []string `json:"targetTechnologyVersions,omitempty"`
	RecognizedAdditionalProperties []string `json:"recognizedAdditionalProperties,omitempty"`
	RecognizedSecuredProperties    []string `json:"recognizedSecuredProperties,omitempty"`
	RecognizedConfigProperties     []string `json:"recognizedConfigurationProperties,omitempty"`
}

// EndpointProperties describe the network address of a resource
type EndpointProperties struct {
	ReferenceableProperties
	DisplayName      string `json:"displayName,omitempty"`
	Description      string `json:"description,omitempty"`
	NetworkAddress   string `json:"networkAddress,omitempty"`
	Protocol         string `json:"protocol,omitempty"`
	EncryptionMethod string `json:"encryptionMethod,omitempty"`
}

// EmbeddedConnectionProperties describe how a virtual connection uses one of
// its embedded connections
type EmbeddedConnectionProperties struct {
	Position    int            `json:"position"`
	DisplayName string         `json:"displayName,omitempty"`
	Arguments   map[string]any `json:"arguments,omitempty"`
}

// AssetConnectionProperties describe the link between an asset and its connection
type AssetConnectionProperties struct {
	AssetSummary string `json:"assetSummary,omitempty"`
}

// EmbeddedConnection is an embedded connection returned with a virtual connection
type EmbeddedConnection struct {
	Position           int            `json:"position"`
	DisplayName        string         `json:"displayName,omitempty"`
	Arguments          map[string]any `json:"arguments,omitempty"`
	EmbeddedConnection ElementStub    `json:"embeddedConnection"`
}

// ConnectionElement is a stored connection
type ConnectionElement struct {
	ElementHeader        ElementHeader        `json:"elementHeader"`
	ConnectionProperties ConnectionProperties `json:"connectionProperties"`
	ConnectorType        *ElementStub         `json:"connectorType,omitempty"`
	Endpoint             *ElementStub         `json:"endpoint,omitempty"`
	EmbeddedConnections  []EmbeddedConnection `json:"embeddedConnections,omitempty"`
}

// ConnectorTypeElement is a stored connector type
type ConnectorTypeElement struct {
	ElementHeader           ElementHeader           `json:"elementHeader"`
	ConnectorTypeProperties ConnectorTypeProperties `json:"connectorTypeProperties"`
}

// EndpointElement is a stored endpoint
type EndpointElement struct {
	ElementHeader      ElementHeader      `json:"elementHeader"`
	EndpointProperties EndpointProperties `json:"endpointProperties"`
}
