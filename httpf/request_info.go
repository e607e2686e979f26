package httpf

type RequestType string

const (
	RequestTypeGlobal   RequestType = "global"
	RequestTypeMetadata RequestType = "metadata"
	RequestTypeOAuth    RequestType = "oauth"
	RequestTypeProbe    RequestType = "probe"
)

type RequestInfo struct {
	Type           RequestType
	CredentialName string
}
