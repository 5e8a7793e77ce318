package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeList_BareArray(t *testing.T) {
	data := []byte(`[{"package_id":1,"package_name":"starter"},{"package_id":2,"package_name":"pro"}]`)

	page, err := decodeList[Package](data, "packages")
	require.NoError(t, err)

	assert.Len(t, page.Items, 2)
	assert.Equal(t, 1, page.TotalPages)
	assert.Equal(t, "pro", page.Items[1].PackageName)
}

func TestDecodeList_NamedEnvelope(t *testing.T) {
	data := []byte(`{"packages":[{"package_id":1,"package_name":"starter"}],"totalPages":4}`)

	page, err := decodeList[Package](data, "packages")
	require.NoError(t, err)

	assert.Len(t, page.Items, 1)
	assert.Equal(t, 4, page.TotalPages)
}

func TestDecodeList_ItemsEnvelope(t *testing.T) {
	data := []byte(`{"items":[{"chatbot_id":3,"chatbot_name":"support"}],"totalPages":2}`)

	page, err := decodeList[Chatbot](data, "chatbots")
	require.NoError(t, err)

	assert.Len(t, page.Items, 1)
	assert.Equal(t, 2, page.TotalPages)
	assert.Equal(t, "support", page.Items[0].ChatbotName)
}

func TestDecodeList_EmptyBareArray(t *testing.T) {
	page, err := decodeList[User]([]byte(`[]`), "users")
	require.NoError(t, err)

	assert.Empty(t, page.Items)
	assert.Equal(t, 1, page.TotalPages)
}

func TestDecodeList_UnknownEnvelope(t *testing.T) {
	_, err := decodeList[User]([]byte(`{"stuff":[]}`), "users")
	require.Error(t, err)
}

func TestDecodeList_Garbage(t *testing.T) {
	_, err := decodeList[User]([]byte(`"nope"`), "users")
	require.Error(t, err)
}
