package cli

import "testing"

func TestValidateToken(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		wantErr bool
	}{
		{"valid", "eyJhbGciOiJSUzI1NiJ9.payload.sig", false},
		{"empty", "", true},
		{"whitespace", "abc def", true},
		{"tab", "abc\tdef", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateToken(tt.token)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateToken(%q) error = %v, wantErr %v", tt.token, err, tt.wantErr)
			}
		})
	}
}
