package marketing

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlatformType(t *testing.T) {
	assert.Equal(t, PlatformMarketplace, ParsePlatformType(" Marketplace "))
	assert.Equal(t, PlatformSocial, ParsePlatformType("social"))
	assert.Equal(t, PlatformOther, ParsePlatformType("classifieds"))
	assert.Equal(t, PlatformOther, ParsePlatformType(""))
}

func TestNewPlatform(t *testing.T) {
	p, err := NewPlatform("Webmotors", "marketplace")
	require.NoError(t, err)
	assert.True(t, p.Type.IsMarketplace())
	assert.True(t, p.IsActive)

	_, err = NewPlatform("  ", PlatformSocial)
	assert.Error(t, err)

	require.NoError(t, p.Rename("Instagram", "weird"))
	assert.Equal(t, PlatformOther, p.Type)
}

func TestPlatformIndex_TypeOf(t *testing.T) {
	olx, _ := NewPlatform("OLX", PlatformMarketplace)
	insta, _ := NewPlatform("Instagram", PlatformSocial)
	idx := NewPlatformIndex([]Platform{*olx, *insta})

	unknown := uuid.New()
	assert.Equal(t, PlatformMarketplace, idx.TypeOf(&olx.ID))
	assert.Equal(t, PlatformSocial, idx.TypeOf(&insta.ID))
	assert.Equal(t, PlatformOther, idx.TypeOf(&unknown))
	assert.Equal(t, PlatformOther, idx.TypeOf(nil))
}

func TestPublication(t *testing.T) {
	carID := uuid.New()

	_, err := NewPublication(uuid.Nil, nil, decimal.Zero, nil)
	assert.Error(t, err)
	_, err = NewPublication(carID, nil, decimal.NewFromInt(-10), nil)
	assert.Error(t, err)

	p, err := NewPublication(carID, nil, decimal.NewFromInt(150), nil)
	require.NoError(t, err)
	assert.Equal(t, p.CreatedAt, *p.EffectiveDate())

	published := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)
	p.PublishedAt = &published
	assert.Equal(t, published, *p.EffectiveDate())

	assert.Nil(t, (&Publication{}).EffectiveDate())
}

func TestNewLead(t *testing.T) {
	carID := uuid.New()

	t.Run("normalises phone and email", func(t *testing.T) {
		lead, err := NewLead(LeadInput{Name: " Ana ", Phone: "(11) 98765-4321", Email: " Ana@Mail.COM "})
		require.NoError(t, err)
		assert.Equal(t, "Ana", lead.Name)
		assert.Equal(t, "11987654321", lead.Phone)
		assert.Equal(t, "ana@mail.com", lead.Email)
		assert.Equal(t, LeadSourceContact, lead.Source)
		assert.Equal(t, LeadNew, lead.Status)
	})

	t.Run("car interest is the default source with a car", func(t *testing.T) {
		lead, err := NewLead(LeadInput{Name: "Bruno", Phone: "21999998888", CarID: &carID})
		require.NoError(t, err)
		assert.Equal(t, LeadSourceCar, lead.Source)
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		_, err := NewLead(LeadInput{Name: "", Phone: "11987654321"})
		assert.Error(t, err)
		_, err = NewLead(LeadInput{Name: "Caio", Phone: "123"})
		assert.Error(t, err)
		_, err = NewLead(LeadInput{Name: "Caio", Phone: "11987654321", Source: "billboard"})
		assert.Error(t, err)
	})
}

func TestLead_TransitionTo(t *testing.T) {
	lead, err := NewLead(LeadInput{Name: "Dani", Phone: "11987654321"})
	require.NoError(t, err)

	assert.Error(t, lead.TransitionTo("archived", ""))
	assert.Error(t, lead.TransitionTo(LeadNew, ""))

	require.NoError(t, lead.TransitionTo(LeadContacted, "called back"))
	assert.Equal(t, "called back", lead.Notes)

	require.NoError(t, lead.TransitionTo(LeadConverted, ""))
	assert.Equal(t, "called back", lead.Notes)
	assert.Error(t, lead.TransitionTo(LeadLost, ""), "closed leads are final")
}

func TestTestimonial(t *testing.T) {
	_, err := NewTestimonial("Eva", "Campinas", "", "Ótimo atendimento", 6)
	assert.Error(t, err)
	_, err = NewTestimonial("", "Campinas", "", "Ótimo atendimento", 5)
	assert.Error(t, err)

	tm, err := NewTestimonial("Eva", "Campinas", "Fiat Argo", "Ótimo atendimento", 5)
	require.NoError(t, err)
	assert.False(t, tm.IsPublished)

	tm.Publish()
	assert.True(t, tm.IsPublished)
	tm.Unpublish()
	assert.False(t, tm.IsPublished)
}
