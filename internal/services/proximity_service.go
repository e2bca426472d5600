// internal/services/proximity_service.go
package services

import (
	"context"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/javajoker/collaboration-service/internal/apperror"
	"github.com/javajoker/collaboration-service/internal/models"
	"github.com/javajoker/collaboration-service/internal/repository"
	"github.com/javajoker/collaboration-service/internal/utils"
)

type ProximityService struct {
	sellers       repository.SellerRepository
	defaultRadius float64
}

// NearbyQuery controls a proximity scan. A zero RadiusKm uses the service
// default.
type NearbyQuery struct {
	Location       string
	RadiusKm       float64
	SortByDistance bool
	ExcludeSelf    bool
}

type ProximityRequest struct {
	Location1 string `json:"location1" validate:"required"`
	Location2 string `json:"location2" validate:"required"`
}

type ProximityResult struct {
	Location1  string  `json:"location1"`
	Location2  string  `json:"location2"`
	DistanceKm float64 `json:"distance_km"`
}

func NewProximityService(sellers repository.SellerRepository, defaultRadiusKm float64) *ProximityService {
	return &ProximityService{
		sellers:       sellers,
		defaultRadius: defaultRadiusKm,
	}
}

// FindNearbySellers returns every seller whose warehouse lies within the
// radius of query.Location, boundary included. Results keep directory
// order unless SortByDistance is set.
func (s *ProximityService) FindNearbySellers(ctx context.Context, sellerID int64, query NearbyQuery) ([]models.NearbySeller, error) {
	if _, err := s.sellers.GetByID(ctx, sellerID); err != nil {
		return nil, err
	}

	origin, err := utils.ParseLocation(query.Location)
	if err != nil {
		return nil, err
	}

	radius := query.RadiusKm
	if radius == 0 {
		radius = s.defaultRadius
	}
	if radius < 0 {
		return nil, apperror.Validation("radius_km must be positive")
	}

	sellers, err := s.sellers.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	nearby := make([]models.NearbySeller, 0)
	for _, seller := range sellers {
		if query.ExcludeSelf && seller.ID == sellerID {
			continue
		}

		point, err := utils.ParseLocation(seller.Location())
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"seller_id": seller.ID,
				"location":  seller.Location(),
			}).Warn("Skipping seller with unusable warehouse location")
			continue
		}

		distance := utils.Haversine(origin, point)
		if distance <= radius {
			nearby = append(nearby, models.NearbySeller{Seller: seller, DistanceKm: distance})
		}
	}

	if query.SortByDistance {
		sort.SliceStable(nearby, func(i, j int) bool {
			return nearby[i].DistanceKm < nearby[j].DistanceKm
		})
	}

	return nearby, nil
}

func (s *ProximityService) CalculateProximity(req *ProximityRequest) (*ProximityResult, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	distance, err := utils.DistanceKm(req.Location1, req.Location2)
	if err != nil {
		return nil, err
	}

	return &ProximityResult{
		Location1:  req.Location1,
		Location2:  req.Location2,
		DistanceKm: distance,
	}, nil
}
