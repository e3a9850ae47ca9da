package auth0

// AppType specifies the kind of application being created or modified.
type AppType string

// Application types.
const (
	AppTypeRegularWeb     AppType = "regular_web"
	AppTypeSPA            AppType = "spa"
	AppTypeNative         AppType = "native"
	AppTypeNonInteractive AppType = "non_interactive"
)

// GrantType is an OAuth 2.0 grant type an application is allowed to use.
type GrantType string

// Grant types.
const (
	GrantTypeAuthorizationCode GrantType = "authorization_code"
	GrantTypeImplicit          GrantType = "implicit"
	GrantTypeClientCredentials GrantType = "client_credentials"
	GrantTypePassword          GrantType = "password"
	GrantTypeRefreshToken      GrantType = "refresh_token"
	GrantTypeDeviceCode        GrantType = "urn:ietf:params:oauth:grant-type:device_code"
	GrantTypeSAMLBearer        GrantType = "urn:ietf:params:oauth:grant-type:saml2-bearer"
)

// ConnectionStrategy defines the authentication strategy for a connection.
type ConnectionStrategy string

// Connection strategies.
const (
	StrategyDatabase     ConnectionStrategy = "auth0"
	StrategyGoogleOAuth2 ConnectionStrategy = "google-oauth2"
	StrategyGitHub       ConnectionStrategy = "github"
	StrategyLinkedIn     ConnectionStrategy = "linkedin"
	StrategyFacebook     ConnectionStrategy = "facebook"
	StrategyWindowsLive  ConnectionStrategy = "windowslive"
	StrategyADFS         ConnectionStrategy = "adfs"
	StrategySAML         ConnectionStrategy = "samlp"
	StrategyAzureAD      ConnectionStrategy = "waad"
	StrategyOkta         ConnectionStrategy = "okta"
	StrategyPingIdentity ConnectionStrategy = "ping7"
	StrategyOneLogin     ConnectionStrategy = "onelogin"
	StrategySalesforce   ConnectionStrategy = "salesforce"
	StrategyCustom       ConnectionStrategy = "custom"
	StrategyOIDC         ConnectionStrategy = "oidc"
)

// TokenAuthMethod specifies how an application authenticates at the token
// endpoint.
type TokenAuthMethod string

// Token endpoint authentication methods.
const (
	TokenAuthNone              TokenAuthMethod = "none"
	TokenAuthClientSecretBasic TokenAuthMethod = "client_secret_basic"
	TokenAuthClientSecretPost  TokenAuthMethod = "client_secret_post"
	TokenAuthClientSecretJWT   TokenAuthMethod = "client_secret_jwt"
	TokenAuthPrivateKeyJWT     TokenAuthMethod = "private_key_jwt"
)

// OrganizationUsage specifies whether an application can be used within
// organizations.
type OrganizationUsage string

// Organization usage settings.
const (
	OrganizationUsageDeny    OrganizationUsage = "deny"
	OrganizationUsageAllow   OrganizationUsage = "allow"
	OrganizationUsageRequire OrganizationUsage = "require"
)

// OrganizationRequireBehavior specifies how the organization parameter is
// handled during login.
type OrganizationRequireBehavior string

// Organization require behaviors.
const (
	OrganizationNoPrompt        OrganizationRequireBehavior = "no_prompt"
	OrganizationPreLoginPrompt  OrganizationRequireBehavior = "pre_login_prompt"
	OrganizationPostLoginPrompt OrganizationRequireBehavior = "post_login_prompt"
)
