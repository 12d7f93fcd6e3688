package services

import (
	"errors"
	"math"
	"testing"
	"time"

	"hotel-pricing/models"
)

func rate(v float64) *float64 { return &v }

func stay(bookIn, eta, bookOut, etd string) models.Booking {
	return models.Booking{
		ID:      "b-1",
		HotelID: "h-1",
		RoomID:  "r-1",
		BookIn:  bookIn,
		Eta:     eta,
		BookOut: bookOut,
		Etd:     etd,
	}
}

func pricedRoom(hourly, nightly float64) models.Room {
	return models.Room{ID: "r-1", HotelID: "h-1", PriceByHour: rate(hourly), PriceByNight: rate(nightly)}
}

func TestComputeOptimalPrice_Scenarios(t *testing.T) {
	tests := []struct {
		name    string
		booking models.Booking
		room    models.Room
		want    PriceResult
	}{
		{
			name:    "two full nights bill nightly",
			booking: stay("2024-01-01", "14:00", "2024-01-03", "14:00"),
			room:    pricedRoom(10, 100),
			want: PriceResult{
				TotalHours: 48, Nights: 2, AdditionalHours: 0,
				HourlyPrice: 480, NightlyPrice: 200, OptimalPrice: 200,
				PricingMethod: PricingMethodNightly,
			},
		},
		{
			name:    "short same-day stay ties and bills hourly",
			booking: stay("2024-01-01", "09:00", "2024-01-01", "11:30"),
			room:    pricedRoom(15, 100),
			want: PriceResult{
				TotalHours: 3, Nights: 0, AdditionalHours: 3,
				HourlyPrice: 45, NightlyPrice: 45, OptimalPrice: 45,
				PricingMethod: PricingMethodHourly,
			},
		},
		{
			name:    "expensive leftover hours round up to an extra night",
			booking: stay("2024-01-01", "14:00", "2024-01-02", "20:00"),
			room:    pricedRoom(20, 100),
			want: PriceResult{
				TotalHours: 30, Nights: 2, AdditionalHours: 0,
				HourlyPrice: 600, NightlyPrice: 200, OptimalPrice: 200,
				PricingMethod: PricingMethodNightly,
			},
		},
		{
			name:    "cheap leftover hours stay hourly on top of nights",
			booking: stay("2024-01-01", "14:00", "2024-01-02", "17:00"),
			room:    pricedRoom(20, 100),
			want: PriceResult{
				TotalHours: 27, Nights: 1, AdditionalHours: 3,
				HourlyPrice: 540, NightlyPrice: 160, OptimalPrice: 160,
				PricingMethod: PricingMethodNightly,
			},
		},
		{
			name:    "early checkout the next day clamps leftover hours to zero",
			booking: stay("2024-01-01", "14:00", "2024-01-02", "10:00"),
			room:    pricedRoom(10, 100),
			want: PriceResult{
				TotalHours: 20, Nights: 1, AdditionalHours: 0,
				HourlyPrice: 200, NightlyPrice: 100, OptimalPrice: 100,
				PricingMethod: PricingMethodNightly,
			},
		},
		{
			name:    "overnight stay crossing midnight",
			booking: stay("2024-01-01", "22:00", "2024-01-02", "02:00"),
			room:    pricedRoom(10, 100),
			want: PriceResult{
				TotalHours: 4, Nights: 1, AdditionalHours: 0,
				HourlyPrice: 40, NightlyPrice: 100, OptimalPrice: 40,
				PricingMethod: PricingMethodHourly,
			},
		},
		{
			name:    "ninety minutes bill two hours",
			booking: stay("2024-01-01", "09:00", "2024-01-01", "10:30"),
			room:    pricedRoom(10, 100),
			want: PriceResult{
				TotalHours: 2, Nights: 0, AdditionalHours: 2,
				HourlyPrice: 20, NightlyPrice: 20, OptimalPrice: 20,
				PricingMethod: PricingMethodHourly,
			},
		},
		{
			name:    "seconds in clock times round up",
			booking: stay("2024-01-01", "09:00:30", "2024-01-01", "10:00:00"),
			room:    pricedRoom(10, 100),
			want: PriceResult{
				TotalHours: 1, Nights: 0, AdditionalHours: 1,
				HourlyPrice: 10, NightlyPrice: 10, OptimalPrice: 10,
				PricingMethod: PricingMethodHourly,
			},
		},
		{
			name:    "eight millennia are not capped",
			booking: stay("1000-01-01", "14:00", "9000-01-01", "14:00"),
			room:    pricedRoom(10, 100),
			want: PriceResult{
				TotalHours: 2921940 * 24, Nights: 2921940, AdditionalHours: 0,
				HourlyPrice: 2921940 * 24 * 10, NightlyPrice: 2921940 * 100, OptimalPrice: 2921940 * 100,
				PricingMethod: PricingMethodNightly,
			},
		},
		{
			name:    "free room",
			booking: stay("2024-01-01", "14:00", "2024-01-02", "12:00"),
			room:    pricedRoom(0, 0),
			want: PriceResult{
				TotalHours: 22, Nights: 1, AdditionalHours: 0,
				HourlyPrice: 0, NightlyPrice: 0, OptimalPrice: 0,
				PricingMethod: PricingMethodHourly,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeOptimalPrice(tt.booking, tt.room)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("got %+v\nwant %+v", got, tt.want)
			}
		})
	}
}

func TestComputeOptimalPrice_Errors(t *testing.T) {
	valid := stay("2024-01-01", "14:00", "2024-01-02", "12:00")

	tests := []struct {
		name    string
		booking func() models.Booking
		room    models.Room
		wantErr error
	}{
		{
			name:    "missing check-in date",
			booking: func() models.Booking { b := valid; b.BookIn = ""; return b },
			room:    pricedRoom(10, 100),
			wantErr: ErrIncompleteBookingData,
		},
		{
			name:    "missing eta",
			booking: func() models.Booking { b := valid; b.Eta = "  "; return b },
			room:    pricedRoom(10, 100),
			wantErr: ErrIncompleteBookingData,
		},
		{
			name:    "missing hotel",
			booking: func() models.Booking { b := valid; b.HotelID = ""; return b },
			room:    pricedRoom(10, 100),
			wantErr: ErrIncompleteBookingData,
		},
		{
			name:    "missing room",
			booking: func() models.Booking { b := valid; b.RoomID = ""; return b },
			room:    pricedRoom(10, 100),
			wantErr: ErrIncompleteBookingData,
		},
		{
			name:    "room without hourly rate",
			booking: func() models.Booking { return valid },
			room:    models.Room{ID: "r-1", PriceByNight: rate(100)},
			wantErr: ErrIncompleteRoomPricingData,
		},
		{
			name:    "room without nightly rate",
			booking: func() models.Booking { return valid },
			room:    models.Room{ID: "r-1", PriceByHour: rate(10)},
			wantErr: ErrIncompleteRoomPricingData,
		},
		{
			name:    "negative rate",
			booking: func() models.Booking { return valid },
			room:    pricedRoom(-1, 100),
			wantErr: ErrIncompleteRoomPricingData,
		},
		{
			name:    "unparseable date",
			booking: func() models.Booking { b := valid; b.BookOut = "2024-13-01"; return b },
			room:    pricedRoom(10, 100),
			wantErr: ErrInvalidDateFormat,
		},
		{
			name:    "unparseable time",
			booking: func() models.Booking { b := valid; b.Etd = "25:00"; return b },
			room:    pricedRoom(10, 100),
			wantErr: ErrInvalidDateFormat,
		},
		{
			name:    "check-out equal to check-in",
			booking: func() models.Booking { return stay("2024-01-01", "14:00", "2024-01-01", "14:00") },
			room:    pricedRoom(10, 100),
			wantErr: ErrInvalidStayDuration,
		},
		{
			name:    "check-out before check-in",
			booking: func() models.Booking { return stay("2024-01-03", "14:00", "2024-01-01", "12:00") },
			room:    pricedRoom(10, 100),
			wantErr: ErrInvalidStayDuration,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeOptimalPrice(tt.booking(), tt.room)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if got != (PriceResult{}) {
				t.Fatalf("expected no result alongside error, got %+v", got)
			}
		})
	}
}

// Sweeps a grid of stays and rates and checks the invariants that hold for
// every valid computation.
func TestComputeOptimalPrice_Invariants(t *testing.T) {
	clocks := []string{"00:00", "00:59", "09:15", "12:00", "14:00", "23:59"}
	rates := [][2]float64{{10, 100}, {15, 100}, {20, 100}, {50, 120}, {0, 80}, {5, 0}}

	for dayOffset := 0; dayOffset <= 3; dayOffset++ {
		// crosses the leap day
		bookOut := time.Date(2024, time.February, 27, 0, 0, 0, 0, time.UTC).AddDate(0, 0, dayOffset).Format(dateLayout)
		for _, eta := range clocks {
			for _, etd := range clocks {
				for _, r := range rates {
					b := stay("2024-02-27", eta, bookOut, etd)
					got, err := ComputeOptimalPrice(b, pricedRoom(r[0], r[1]))

					in, _ := parseDate(b.BookIn)
					out, _ := parseDate(b.BookOut)
					ci, _ := parseClock(eta)
					co, _ := parseClock(etd)
					minutes := out.Add(co).Sub(in.Add(ci)).Minutes()

					if minutes <= 0 {
						if !errors.Is(err, ErrInvalidStayDuration) {
							t.Fatalf("%+v: expected ErrInvalidStayDuration, got %v", b, err)
						}
						continue
					}
					if err != nil {
						t.Fatalf("%+v: unexpected error %v", b, err)
					}

					if want := int(math.Ceil(minutes / 60)); got.TotalHours != want {
						t.Fatalf("%+v: totalHours %d, want %d", b, got.TotalHours, want)
					}
					if got.AdditionalHours < 0 {
						t.Fatalf("%+v: negative additional hours %d", b, got.AdditionalHours)
					}
					if got.OptimalPrice != math.Min(got.HourlyPrice, got.NightlyPrice) {
						t.Fatalf("%+v: optimal %v is not min(%v, %v)", b, got.OptimalPrice, got.HourlyPrice, got.NightlyPrice)
					}
					wantMethod := PricingMethodNightly
					if got.HourlyPrice <= got.NightlyPrice {
						wantMethod = PricingMethodHourly
					}
					if got.PricingMethod != wantMethod {
						t.Fatalf("%+v: method %s, want %s", b, got.PricingMethod, wantMethod)
					}
					if float64(got.AdditionalHours)*r[0] > r[1] {
						t.Fatalf("%+v: %d leftover hours cost more than a night", b, got.AdditionalHours)
					}
				}
			}
		}
	}
}
