package nlp

import (
	"testing"

	"golang-warga-nlp/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const incidentReport = "Kejadian pada 12 Februari 2026 di Jl. Mawar No 5, korban rugi Rp 500.000, lapor ke 081234567890"

func TestExtractEntities_IncidentReport(t *testing.T) {
	entities := ExtractEntities(incidentReport)

	assert.Equal(t, []entity.Entity{
		{Type: entity.EntityDate, Value: "12 Februari 2026", Position: 14},
		{Type: entity.EntityMoney, Value: "Rp 500.000", Position: 62},
		{Type: entity.EntityLocation, Value: "Jl. Mawar No 5", Position: 34},
		{Type: entity.EntityPhone, Value: "081234567890", Position: 83},
	}, entities)
}

func TestExtractEntities_Patterns(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		entityType entity.EntityType
		want       []string
	}{
		{name: "numeric dates", text: "Rapat 25/01/2026 dan 3-2-26", entityType: entity.EntityDate, want: []string{"25/01/2026", "3-2-26"}},
		{name: "month name any case", text: "sejak 1 JANUARI 2026", entityType: entity.EntityDate, want: []string{"1 JANUARI 2026"}},
		{name: "rupiah with cents", text: "Saldo Rp. 2.500.000,00 tersisa", entityType: entity.EntityMoney, want: []string{"Rp. 2.500.000,00"}},
		{name: "amount words", text: "iuran 50 ribu, dana 5 juta dan 450.000 rupiah", entityType: entity.EntityMoney, want: []string{"50 ribu", "5 juta", "450.000 rupiah"}},
		{name: "location keywords", text: "Warga RT 04 Kelurahan Sukamaju", entityType: entity.EntityLocation, want: []string{"RT 04 Kelurahan Sukamaju"}},
		{name: "phone with country code", text: "Hubungi +62 812-3456-7890 segera", entityType: entity.EntityPhone, want: []string{"+62 812-3456-7890"}},
		{name: "landline", text: "Telp 021 5551234", entityType: entity.EntityPhone, want: []string{"021 5551234"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, e := range ExtractEntities(tt.text) {
				if e.Type == tt.entityType {
					got = append(got, e.Value)
				}
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractEntities_GroupedByPatternOrder(t *testing.T) {
	entities := ExtractEntities("Telepon 081234567890 pada 01/02/2026")
	require.Len(t, entities, 2)
	assert.Equal(t, entity.EntityDate, entities[0].Type)
	assert.Equal(t, entity.EntityPhone, entities[1].Type)
	assert.Greater(t, entities[0].Position, entities[1].Position)
}

func TestExtractEntities_PositionCountsCharacters(t *testing.T) {
	entities := ExtractEntities("Ibu Siti — lapor 081234567890")
	require.Len(t, entities, 1)
	assert.Equal(t, 17, entities[0].Position)
}

func TestExtractEntities_NoMatches(t *testing.T) {
	entities := ExtractEntities("Kucing duduk di atas meja kayu")
	assert.NotNil(t, entities)
	assert.Empty(t, entities)
}
