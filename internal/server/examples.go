package server

import (
	"net/http"

	"github.com/mcncl/toonvert/internal/logger"
	"github.com/mcncl/toonvert/internal/models"
	"github.com/mcncl/toonvert/internal/render"
)

// Example is one catalog entry: a name, a short description, and the
// sample document as compact JSON ready for the convert endpoint.
type Example struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Data        string `json:"data"`
}

// ExamplesResponse is the body returned by GET /api/examples.
type ExamplesResponse struct {
	Examples map[string]Example `json:"examples"`
}

func (s *Server) handleExamples(w http.ResponseWriter, _ *http.Request) {
	catalog := map[string]Example{
		"simple_users": {
			Name:        "Simple Users",
			Description: "Basic user list - perfect for TOON's tabular format",
			Data:        mustCompact(simpleUsers()),
		},
		"products": {
			Name:        "Product Catalog",
			Description: "E-commerce products with uniform structure",
			Data:        mustCompact(products()),
		},
		"analytics": {
			Name:        "Analytics Data",
			Description: "Time-series metrics - shows TOON's efficiency",
			Data:        mustCompact(analytics()),
		},
		"nested": {
			Name:        "Nested Structure",
			Description: "Mixed structure with nested objects and arrays",
			Data:        mustCompact(nestedHikes()),
		},
	}
	writeJSON(w, http.StatusOK, ExamplesResponse{Examples: catalog})
}

// mustCompact renders a catalog value as compact JSON. The catalog is
// fixed, so a render failure is a programming error.
func mustCompact(v *models.Value) string {
	out, err := render.JSONCompact(v)
	if err != nil {
		logger.Errorf("failed to render example: %v", err)
		return "{}"
	}
	return out
}

func user(id int64, name, role string, active bool) *models.Value {
	return models.Object(
		models.Field("id", models.Int(id)),
		models.Field("name", models.Str(name)),
		models.Field("role", models.Str(role)),
		models.Field("active", models.Bool(active)),
	)
}

func simpleUsers() *models.Value {
	return models.Object(
		models.Field("users", models.Array(
			user(1, "Alice", "admin", true),
			user(2, "Bob", "user", true),
			user(3, "Charlie", "user", false),
		)),
	)
}

func product(id int64, name string, price float64, stock int64) *models.Value {
	return models.Object(
		models.Field("id", models.Int(id)),
		models.Field("name", models.Str(name)),
		models.Field("price", models.Float(price)),
		models.Field("stock", models.Int(stock)),
	)
}

func products() *models.Value {
	return models.Object(
		models.Field("products", models.Array(
			product(301, "Wireless Mouse", 29.99, 150),
			product(302, "Mechanical Keyboard", 89.00, 45),
			product(303, "USB-C Hub", 45.50, 200),
		)),
	)
}

func metric(date string, views, clicks, conversions int64, revenue float64) *models.Value {
	return models.Object(
		models.Field("date", models.Str(date)),
		models.Field("views", models.Int(views)),
		models.Field("clicks", models.Int(clicks)),
		models.Field("conversions", models.Int(conversions)),
		models.Field("revenue", models.Float(revenue)),
	)
}

func analytics() *models.Value {
	return models.Object(
		models.Field("metrics", models.Array(
			metric("2025-01-01", 5715, 211, 28, 7976.46),
			metric("2025-01-02", 7103, 393, 28, 8360.53),
			metric("2025-01-03", 7248, 378, 24, 3212.57),
			metric("2025-01-04", 2927, 77, 11, 1211.69),
		)),
	)
}

func hike(id int64, name string, distanceKm float64, elevationGain int64, companion string, wasSunny bool) *models.Value {
	return models.Object(
		models.Field("id", models.Int(id)),
		models.Field("name", models.Str(name)),
		models.Field("distanceKm", models.Float(distanceKm)),
		models.Field("elevationGain", models.Int(elevationGain)),
		models.Field("companion", models.Str(companion)),
		models.Field("wasSunny", models.Bool(wasSunny)),
	)
}

func nestedHikes() *models.Value {
	return models.Object(
		models.Field("context", models.Object(
			models.Field("task", models.Str("Our favorite hikes together")),
			models.Field("location", models.Str("Boulder")),
			models.Field("season", models.Str("spring_2025")),
		)),
		models.Field("friends", models.Array(
			models.Str("ana"), models.Str("luis"), models.Str("sam"),
		)),
		models.Field("hikes", models.Array(
			hike(1, "Blue Lake Trail", 7.5, 320, "ana", true),
			hike(2, "Ridge Overlook", 9.2, 540, "luis", false),
		)),
	)
}
