package logx_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"crm_pipeline/pkg/logx"
)

func TestSensitiveDataMaskerMask(t *testing.T) {
	rq := require.New(t)

	masker := logx.NewSensitiveDataMasker()

	testCases := []struct {
		name   string
		input  []byte
		output []byte
	}{
		{
			name:   "Password",
			input:  []byte(`{"hello":"world","password":"abc123"}`),
			output: []byte(`{"hello":"world","password":"[MASKED]"}`),
		},
		{
			name:   "Password capital letter",
			input:  []byte(`{"hello":"world","Password":"abc123"}`),
			output: []byte(`{"hello":"world","Password":"[MASKED]"}`),
		},
		{
			name:   "API key",
			input:  []byte(`{"baseUrl":"https://records.local","apiKey":"nc_pat_123"}`),
			output: []byte(`{"baseUrl":"https://records.local","apiKey":"[MASKED]"}`),
		},
		{
			name:   "Contact email and phone",
			input:  []byte(`{"Title_c": "Renewal", "Email_c": "john@doe.com", "phone": "+1 555 0100"}`),
			output: []byte(`{"Title_c": "Renewal", "Email_c": "[MASKED]", "phone": "[MASKED]"}`),
		},
		{
			name:   "Bearer header",
			input:  []byte("GET /api/v2/tables/deals/records HTTP/1.1\r\nAuthorization: Bearer secret\r\n"),
			output: []byte("GET /api/v2/tables/deals/records HTTP/1.1\r\nAuthorization: Bearer [MASKED]\r\n"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			output := masker.Mask(tc.input)

			rq.Equal(tc.output, output, "%s vs %s", tc.output, output)
		})
	}
}
