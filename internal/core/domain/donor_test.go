package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shantodev/temple_donation_app/internal/core/domain"
)

func TestMaskDonorName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "regular name keeps first two and last characters",
			input: "Shantonu",
			want:  "Sh****u",
		},
		{
			name:  "two character name keeps only the first",
			input: "Al",
			want:  "A****",
		},
		{
			name:  "single character name keeps only the first",
			input: "R",
			want:  "R****",
		},
		{
			name:  "three character name",
			input: "Joy",
			want:  "Jo****y",
		},
		{
			name:  "empty name becomes Anonymous",
			input: "",
			want:  domain.AnonymousDonorName,
		},
		{
			name:  "whitespace only becomes Anonymous",
			input: "   ",
			want:  domain.AnonymousDonorName,
		},
		{
			name:  "multibyte name is masked on runes, not bytes",
			input: "শান্তনু দে",
			want:  "শা****ে",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.MaskDonorName(tt.input))
		})
	}
}
