package http

import (
	"time"

	"github.com/flight-search/itinerary-normalization-service/internal/domain"
)

// NormalizeResponseDTO is the data transfer object for normalization responses.
// It matches the expected API output format with snake_case fields.
type NormalizeResponseDTO struct {
	SearchID          string         `json:"search_id,omitempty"`
	Metadata          MetadataDTO    `json:"metadata"`
	DirectItineraries []ItineraryDTO `json:"direct_itineraries"`
	OtherItineraries  []ItineraryDTO `json:"other_itineraries"`
	Disclaimers       []string       `json:"disclaimers"`
}

// MetadataDTO contains aggregate counts about the normalization run.
type MetadataDTO struct {
	TotalResults    int `json:"total_results"`
	DirectCount     int `json:"direct_count"`
	OtherCount      int `json:"other_count"`
	FlaggedCount    int `json:"flagged_count"`
	DroppedByFilter int `json:"dropped_by_filter"`
	WarningCount    int `json:"warning_count"`
}

// ItineraryDTO is the data transfer object for a normalized itinerary.
type ItineraryDTO struct {
	ID                 string                `json:"id"`
	Segments           []SegmentDTO          `json:"segments"`
	Transfers          []TransferDTO         `json:"transfers,omitempty"`
	TotalDuration      DurationDTO           `json:"total_duration"`
	Price              PriceDTO              `json:"price"`
	Airlines           []AirlineDTO          `json:"airlines,omitempty"`
	IsDirectFlight     bool                  `json:"is_direct_flight"`
	NumberOfStops      int                   `json:"number_of_stops"`
	IsHiddenCity       bool                  `json:"is_hidden_city"`
	IsThrowawayDeal    bool                  `json:"is_throwaway_deal"`
	IsTrueHiddenCity   bool                  `json:"is_true_hidden_city"`
	IsSelfTransfer     bool                  `json:"is_self_transfer"`
	IsVirtualInterline bool                  `json:"is_virtual_interline"`
	HiddenDestination  *HiddenDestinationDTO `json:"hidden_destination,omitempty"`
	BookingToken       string                `json:"booking_token,omitempty"`
	DeepLink           string                `json:"deep_link,omitempty"`
	Warnings           []WarningDTO          `json:"warnings,omitempty"`
	RankingScore       float64               `json:"ranking_score,omitempty"`
}

// SegmentDTO represents one flown leg.
type SegmentDTO struct {
	ID               string      `json:"id,omitempty"`
	Airline          AirlineDTO  `json:"airline"`
	OperatingAirline *AirlineDTO `json:"operating_airline,omitempty"`
	FlightNumber     string      `json:"flight_number,omitempty"`
	Origin           AirportDTO  `json:"origin"`
	Destination      AirportDTO  `json:"destination"`
	DepartureLocal   string      `json:"departure_local,omitempty"`
	ArrivalLocal     string      `json:"arrival_local,omitempty"`
	Duration         DurationDTO `json:"duration"`
	CabinClass       string      `json:"cabin_class,omitempty"`
	Equipment        string      `json:"equipment,omitempty"`
}

// TransferDTO represents the layover between two consecutive segments.
type TransferDTO struct {
	City               string            `json:"city,omitempty"`
	DurationMinutes    int               `json:"duration_minutes"`
	Formatted          string            `json:"formatted,omitempty"`
	IsDifferentAirport bool              `json:"is_different_airport"`
	AirportChange      *AirportChangeDTO `json:"airport_change,omitempty"`
	IsAirlineChange    bool              `json:"is_airline_change"`
	IsBaggageRecheck   bool              `json:"is_baggage_recheck"`
	IsImplausible      bool              `json:"is_implausible,omitempty"`
}

// AirportChangeDTO records an airport switch during a transfer.
type AirportChangeDTO struct {
	FromCode string `json:"from_code"`
	ToCode   string `json:"to_code"`
}

// AirlineDTO represents airline information.
type AirlineDTO struct {
	Code    string `json:"code"`
	Name    string `json:"name,omitempty"`
	LogoURL string `json:"logo_url,omitempty"`
}

// AirportDTO represents airport information.
type AirportDTO struct {
	Code        string `json:"code"`
	Name        string `json:"name,omitempty"`
	CityName    string `json:"city_name,omitempty"`
	CountryName string `json:"country_name,omitempty"`
}

// DurationDTO represents a duration.
type DurationDTO struct {
	TotalMinutes int    `json:"total_minutes"`
	Formatted    string `json:"formatted,omitempty"`
}

// PriceDTO represents price information. Available is false when the upstream
// price could not be validated; consumers must not render Amount in that case.
type PriceDTO struct {
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
	Available bool    `json:"available"`
}

// HiddenDestinationDTO is the actual disembarkation airport of a hidden-city fare.
type HiddenDestinationDTO struct {
	Code        string `json:"code"`
	Name        string `json:"name,omitempty"`
	CityName    string `json:"city_name,omitempty"`
	CountryName string `json:"country_name,omitempty"`
}

// WarningDTO records a data-quality issue found during normalization.
type WarningDTO struct {
	Code   string `json:"code"`
	Field  string `json:"field,omitempty"`
	Detail string `json:"detail,omitempty"`
}

// ToNormalizeResponseDTO converts a domain NormalizedBatch to a NormalizeResponseDTO.
func ToNormalizeResponseDTO(batch *domain.NormalizedBatch) *NormalizeResponseDTO {
	if batch == nil {
		return nil
	}

	return &NormalizeResponseDTO{
		SearchID: batch.SearchID,
		Metadata: MetadataDTO{
			TotalResults:    batch.Metadata.TotalResults,
			DirectCount:     batch.Metadata.DirectCount,
			OtherCount:      batch.Metadata.OtherCount,
			FlaggedCount:    batch.Metadata.FlaggedCount,
			DroppedByFilter: batch.Metadata.DroppedByFilter,
			WarningCount:    batch.Metadata.WarningCount,
		},
		DirectItineraries: toItineraryDTOs(batch.DirectItineraries),
		OtherItineraries:  toItineraryDTOs(batch.OtherItineraries),
		Disclaimers:       batch.Disclaimers,
	}
}

func toItineraryDTOs(itineraries []domain.Itinerary) []ItineraryDTO {
	dtos := make([]ItineraryDTO, len(itineraries))
	for i := range itineraries {
		dtos[i] = ToItineraryDTO(&itineraries[i])
	}
	return dtos
}

// ToItineraryDTO converts a domain Itinerary to an ItineraryDTO.
func ToItineraryDTO(it *domain.Itinerary) ItineraryDTO {
	dto := ItineraryDTO{
		ID: it.ID,
		TotalDuration: DurationDTO{
			TotalMinutes: it.TotalDurationMinutes,
			Formatted:    it.TotalDurationFormatted,
		},
		Price: PriceDTO{
			Amount:    it.Price.Amount,
			Currency:  it.Price.Currency,
			Available: it.Price.Available,
		},
		IsDirectFlight:     it.IsDirectFlight,
		NumberOfStops:      it.NumberOfStops,
		IsHiddenCity:       it.IsHiddenCity,
		IsThrowawayDeal:    it.IsThrowawayDeal,
		IsTrueHiddenCity:   it.IsTrueHiddenCity,
		IsSelfTransfer:     it.IsSelfTransfer,
		IsVirtualInterline: it.IsVirtualInterline,
		BookingToken:       it.BookingToken,
		DeepLink:           it.DeepLink,
		RankingScore:       it.RankingScore,
	}

	dto.Segments = make([]SegmentDTO, len(it.Segments))
	for i := range it.Segments {
		dto.Segments[i] = toSegmentDTO(&it.Segments[i])
	}

	if len(it.Transfers) > 0 {
		dto.Transfers = make([]TransferDTO, len(it.Transfers))
		for i := range it.Transfers {
			dto.Transfers[i] = toTransferDTO(&it.Transfers[i])
		}
	}

	if len(it.Airlines) > 0 {
		dto.Airlines = make([]AirlineDTO, len(it.Airlines))
		for i, a := range it.Airlines {
			dto.Airlines[i] = toAirlineDTO(a)
		}
	}

	if it.HiddenDestination != nil {
		dto.HiddenDestination = &HiddenDestinationDTO{
			Code:        it.HiddenDestination.Code,
			Name:        it.HiddenDestination.Name,
			CityName:    it.HiddenDestination.CityName,
			CountryName: it.HiddenDestination.CountryName,
		}
	}

	if len(it.Warnings) > 0 {
		dto.Warnings = make([]WarningDTO, len(it.Warnings))
		for i, w := range it.Warnings {
			dto.Warnings[i] = WarningDTO{
				Code:   string(w.Code),
				Field:  w.Field,
				Detail: w.Detail,
			}
		}
	}

	return dto
}

func toSegmentDTO(s *domain.Segment) SegmentDTO {
	dto := SegmentDTO{
		ID:             s.ID,
		Airline:        toAirlineDTO(s.Airline),
		FlightNumber:   s.FlightNumber,
		Origin:         toAirportDTO(s.Origin),
		Destination:    toAirportDTO(s.Destination),
		DepartureLocal: formatLocalTime(s.DepartureLocal),
		ArrivalLocal:   formatLocalTime(s.ArrivalLocal),
		Duration: DurationDTO{
			TotalMinutes: s.DurationMinutes,
			Formatted:    domain.FormatDurationMinutes(s.DurationMinutes),
		},
		CabinClass: s.CabinClass,
		Equipment:  s.Equipment,
	}

	if s.OperatingAirline != nil {
		op := toAirlineDTO(*s.OperatingAirline)
		dto.OperatingAirline = &op
	}

	return dto
}

func toTransferDTO(t *domain.Transfer) TransferDTO {
	dto := TransferDTO{
		City:               t.City,
		DurationMinutes:    t.DurationMinutes,
		Formatted:          t.Formatted,
		IsDifferentAirport: t.IsDifferentAirport,
		IsAirlineChange:    t.IsAirlineChange,
		IsBaggageRecheck:   t.IsBaggageRecheck,
		IsImplausible:      t.IsImplausible,
	}

	if t.AirportChange != nil {
		dto.AirportChange = &AirportChangeDTO{
			FromCode: t.AirportChange.FromCode,
			ToCode:   t.AirportChange.ToCode,
		}
	}

	return dto
}

func toAirlineDTO(a domain.AirlineRef) AirlineDTO {
	return AirlineDTO{
		Code:    a.Code,
		Name:    a.Name,
		LogoURL: a.LogoURL,
	}
}

func toAirportDTO(a domain.AirportRef) AirportDTO {
	return AirportDTO{
		Code:        a.Code,
		Name:        a.Name,
		CityName:    a.CityName,
		CountryName: a.CountryName,
	}
}

// formatLocalTime renders a local wall-clock time without a zone designator.
// Zero times render as empty strings.
func formatLocalTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02T15:04:05")
}
