package ocs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testShareOK = `<?xml version="1.0"?>
<ocs>
 <meta>
  <status>ok</status>
  <statuscode>200</statuscode>
  <message>OK</message>
 </meta>
 <data>
  <id>42</id>
  <share_type>3</share_type>
  <permissions>1</permissions>
  <expiration>2025-01-01 00:00:00</expiration>
  <path>/my_file.txt</path>
  <token>abc</token>
  <url>https://host/s/abc</url>
 </data>
</ocs>`

func TestDecodeShare(t *testing.T) {
	rs, err := DecodeShare([]byte(testShareOK))
	require.NoError(t, err)
	assert.Equal(t, "https://host/s/abc", rs.URL)
	assert.Equal(t, "42", rs.ID)
	assert.Equal(t, "abc", rs.Token)
	assert.Equal(t, "/my_file.txt", rs.Path)
	assert.Equal(t, "2025-01-01 00:00:00", rs.Expiration)
}

func TestDecodeShareMissingURL(t *testing.T) {
	raw := `<?xml version="1.0"?><ocs><meta><status>ok</status><statuscode>200</statuscode></meta><data><id>1</id></data></ocs>`
	_, err := DecodeShare([]byte(raw))
	assert.True(t, errors.Is(err, ErrMissingURL))
}

func TestDecodeShareFailure(t *testing.T) {
	raw := `<?xml version="1.0"?><ocs><meta><status>failure</status><statuscode>404</statuscode><message>Wrong path, file/folder does not exist</message></meta><data/></ocs>`
	_, err := DecodeShare([]byte(raw))
	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, 404, se.StatusCode)
	assert.Equal(t, "Wrong path, file/folder does not exist", se.Message)
}

func TestDecodeShareInvalid(t *testing.T) {
	for _, raw := range []string{"", "{\"data\":{}}", "<html><body>oops</body></html>"} {
		_, err := DecodeShare([]byte(raw))
		assert.Error(t, err)
		assert.False(t, errors.Is(err, ErrMissingURL))
	}
}

func TestDecodeMeta(t *testing.T) {
	meta, ok := DecodeMeta([]byte(testShareOK))
	require.True(t, ok)
	assert.Equal(t, StatusOK, meta.Status)
	assert.Equal(t, 200, meta.StatusCode)
	_, ok = DecodeMeta([]byte("<d:error xmlns:d=\"DAV:\"/>"))
	assert.False(t, ok)
}
