package jwt

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-resty/resty/v2"
)

type Signer interface {
	SignUrlQuery(url string) string
	SignAuthHeader(req *http.Request)
	SignRestyRequest(req *resty.Request) *resty.Request
}

type signer struct {
	token string
}

// SignUrlQuery adds the token as an access_token query parameter, for
// endpoints that cannot accept an authorization header.
func (s *signer) SignUrlQuery(urlVal string) string {
	parsedUrl, err := url.Parse(urlVal)
	if err != nil {
		return urlVal + "?access_token=" + s.token
	}

	query := parsedUrl.Query()
	query.Set("access_token", s.token)
	parsedUrl.RawQuery = query.Encode()

	return parsedUrl.String()
}

func (s *signer) SignAuthHeader(req *http.Request) {
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", s.token))
}

func (s *signer) SignRestyRequest(req *resty.Request) *resty.Request {
	return req.SetAuthToken(s.token)
}

func NewSigner(token string) Signer {
	return &signer{token}
}
