package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsCPFValid(t *testing.T) {
	valid := []string{"52998224725", "529.982.247-25", "11144477735", "390.533.447-05"}
	for _, cpf := range valid {
		assert.True(t, IsCPFValid(cpf), cpf)
	}

	invalid := []string{"", "11111111111", "00000000000", "52998224724", "5299822472", "529982247255", "52a98224725"}
	for _, cpf := range invalid {
		assert.False(t, IsCPFValid(cpf), cpf)
	}
}

func TestNormalizeCPF(t *testing.T) {
	assert.Equal(t, "52998224725", NormalizeCPF(" 529.982.247-25 "))
}
