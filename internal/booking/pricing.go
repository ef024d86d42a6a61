package booking

import "github.com/Hassaan9289/AirlinePoc/internal/models"

// unitPriceForClass returns the per-passenger price for the chosen class,
// derived from the flight's base fare and the class multiplier table.
func unitPriceForClass(f *models.Flight, seatClass string) float64 {
	return models.Round2(f.PriceUSD * models.MultiplierFor(seatClass))
}

// newBill builds the charge summary shown on preview and frozen into a
// confirmed reservation.
func newBill(unitPrice float64, passengerCount int) map[string]interface{} {
	if passengerCount < 1 {
		passengerCount = 1
	}
	total := models.Round2(unitPrice * float64(passengerCount))
	return map[string]interface{}{
		"currency":   "USD",
		"unit_price": unitPrice,
		"passengers": passengerCount,
		"subtotal":   total,
		"total":      total,
	}
}

// reservationBill recomputes a display bill from the frozen total and
// stored passenger count, not from current fares. The derived unit price is
// total divided by headcount, which need not equal the original rounding.
func reservationBill(r *models.Reservation) map[string]interface{} {
	count := r.PassengerCount
	if count < 1 {
		count = 1
	}
	return map[string]interface{}{
		"currency":   "USD",
		"unit_price": models.Round2(r.TotalPriceUSD / float64(count)),
		"passengers": count,
		"subtotal":   r.TotalPriceUSD,
		"total":      r.TotalPriceUSD,
	}
}
