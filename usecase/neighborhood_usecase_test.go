package usecase

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"vecino-activo/apperr"
	"vecino-activo/entity"
	"vecino-activo/geo"
)

func TestListInViewportWithoutBBox(t *testing.T) {
	repo := &MockNeighborhoodRepository{}
	defer repo.AssertExpectations(t)
	repo.On("FindAllOrdered", mock.Anything).Return([]entity.Neighborhood{{Code: "13101-1"}}, nil).Once()

	uc := NewNeighborhoodUsecase(repo, logrus.New())
	units, err := uc.ListInViewport(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, units, 1)
}

func TestListInViewportParsesBBox(t *testing.T) {
	repo := &MockNeighborhoodRepository{}
	defer repo.AssertExpectations(t)

	expected := geo.Bounds{MinLon: -70.7, MinLat: -33.5, MaxLon: -70.5, MaxLat: -33.3}
	repo.On("FindIntersecting", mock.Anything, expected).Return([]entity.Neighborhood{}, nil).Once()

	uc := NewNeighborhoodUsecase(repo, logrus.New())
	_, err := uc.ListInViewport(context.Background(), "-70.7,-33.5,-70.5,-33.3")
	require.NoError(t, err)
}

func TestListInViewportRejectsMalformedBBox(t *testing.T) {
	uc := NewNeighborhoodUsecase(&MockNeighborhoodRepository{}, logrus.New())

	for _, bbox := range []string{"1,2,3", "a,b,c,d", "-70.5,-33.5,-70.7,-33.3"} {
		_, err := uc.ListInViewport(context.Background(), bbox)
		assert.ErrorIs(t, err, apperr.ErrInvalidInput, "bbox %q", bbox)
	}
}
