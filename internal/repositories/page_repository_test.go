package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Имена таблиц и колонок страниц - контракт, на который завязаны
// фронтенд и миграции

func TestPageTableContract(t *testing.T) {
	cases := []struct {
		kind       PageKind
		table      string
		timeColumn string
	}{
		{PageAboutUs, "about_us", "updated_at"},
		{PageTerms, "terms_and_conditions", "last_updated"},
		{PagePrivacy, "privacy_policy", "last_updated"},
	}

	for _, tc := range cases {
		desc, ok := pageTables[tc.kind]
		require.True(t, ok, tc.kind)
		assert.Equal(t, tc.table, desc.Table)
		assert.Equal(t, tc.timeColumn, desc.TimeColumn)
	}

	assert.Equal(t, "html_content", pageContentColumn)

	_, ok := pageTables[PageKind("faq")]
	assert.False(t, ok)
}
