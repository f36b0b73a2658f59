package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// API endpoints.
const (
	// DefaultBaseURL is the Fiken v2 API root.
	DefaultBaseURL = "https://api.fiken.no/api/v2"

	// DefaultTokenURL is the Fiken OAuth2 token endpoint.
	DefaultTokenURL = "https://fiken.no/oauth/token"
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second
)

// Retry limits. Retries are off unless a caller asks for them.
const (
	// DefaultRetryMax is the default maximum number of retries.
	DefaultRetryMax = 0

	// DefaultRetryWaitMin is the minimum wait time between opted-in retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between opted-in retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// Upstream rate constraints.
const (
	// MaxRequestsPerSecond is the Fiken per-second request cap.
	MaxRequestsPerSecond = 4

	// RateWindow is the sliding window the per-second cap applies to.
	RateWindow = time.Second
)

// OAuth2 token lifetime.
const (
	// DefaultTokenLifetime is assumed when the token endpoint omits expires_in.
	DefaultTokenLifetime = 86157 * time.Second

	// TokenRefreshBuffer is how long before expiry a token is refreshed.
	TokenRefreshBuffer = 300 * time.Second
)

// HTTP headers.
const (
	// HeaderAuthorization carries the bearer token.
	HeaderAuthorization = "Authorization"

	// HeaderRequestID carries the per-request correlation identifier.
	HeaderRequestID = "X-Request-ID"

	// HeaderPage is the current page (0-indexed) of a list response.
	HeaderPage = "Fiken-Api-Page"

	// HeaderPageCount is the total number of pages of a list response.
	HeaderPageCount = "Fiken-Api-Page-Count"

	// HeaderLocation points at a newly created resource.
	HeaderLocation = "Location"
)

// Pagination.
const (
	// DefaultPageSize is the Fiken default page size.
	DefaultPageSize = 25

	// MaxPageSize is the largest page size Fiken accepts.
	MaxPageSize = 100

	// QueryPage is the page query parameter.
	QueryPage = "page"

	// QueryPageSize is the page size query parameter.
	QueryPageSize = "pageSize"
)

// Multipart upload field names.
const (
	// MultipartFileField holds the uploaded bytes.
	MultipartFileField = "file"

	// MultipartFilenameField repeats the filename as a plain form field.
	MultipartFilenameField = "filename"

	// DefaultContentType is used when the file extension is unknown.
	DefaultContentType = "application/octet-stream"

	// DefaultAttachmentName is used for reader attachments without a name.
	DefaultAttachmentName = "attachment"
)

// Format constants.
const (
	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"

	// FormatTable for table output format.
	FormatTable = "table"

	// DateLayout is the wire format for dates.
	DateLayout = "2006-01-02"
)

// UI and display constants.
const (
	// JSONIndentSize is the number of spaces for JSON indentation.
	JSONIndentSize = 2

	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"

	// MaskedSecret is used to hide sensitive information.
	MaskedSecret = "***"

	// MinimumArgumentCount is the minimum number of command line arguments.
	MinimumArgumentCount = 2
)

// Token store.
const (
	// DefaultTokenBucket is the NATS key/value bucket for shared tokens.
	DefaultTokenBucket = "fiken_tokens"
)

// Client identification.
const (
	// Version is the library version reported in the User-Agent header.
	Version = "0.1.0"

	// DefaultUserAgent is sent unless Config.UserAgent overrides it.
	DefaultUserAgent = "fiken-client-go/" + Version
)
