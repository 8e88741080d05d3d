package reports

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xyz-asif/ecocheck-admin/internal/apiclient"
	"github.com/xyz-asif/ecocheck-admin/internal/pkg/pagination"
)

func mustTimestamp(t *testing.T, s string) apiclient.Timestamp {
	t.Helper()
	var ts apiclient.Timestamp
	require.NoError(t, json.Unmarshal([]byte(`"`+s+`"`), &ts))
	require.True(t, ts.Present())
	return ts
}

func pagingQuery(sort string) pagination.Query {
	return pagination.Query{Sort: sort, Page: 1}
}
