package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"

	"github.com/intervention-engine/cvriskservice/engine"
)

// selectorParamNames are the query parameters that pick a scorer variant
// rather than describe the patient.
var selectorParamNames = []string{"region", "version", "outcome"}

// RegisterRoutes sets up the http request handlers with Echo.
func RegisterRoutes(e *echo.Echo, service *RiskService) {
	e.GET("/scores", listScores(service))
	e.GET("/pies/:id", getPie(service))
	e.POST("/calculate/:name", calculate(service))
	e.POST("/calculate/:name/batch", calculateBatch(service))
}

func listScores(service *RiskService) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, service.Configs())
	}
}

func getPie(service *RiskService) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := c.Param("id")
		if !bson.IsObjectIdHex(id) {
			return c.String(http.StatusBadRequest, "Bad ID format for requested Pie. Should be a BSON Id")
		}
		pie, err := service.Pie(bson.ObjectIdHex(id))
		if err != nil {
			if errors.Cause(err) == mgo.ErrNotFound {
				return c.NoContent(http.StatusNotFound)
			}
			return err
		}
		return c.JSON(http.StatusOK, pie)
	}
}

func calculate(service *RiskService) echo.HandlerFunc {
	return func(c echo.Context) error {
		rec := &engine.PatientRecord{}
		if err := c.Bind(rec); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "malformed patient record"})
		}
		estimate, err := service.Calculate(c.Param("name"), selectorParams(c), rec)
		if err != nil {
			return calculationError(c, err)
		}
		return c.JSON(http.StatusOK, estimate)
	}
}

func calculateBatch(service *RiskService) echo.HandlerFunc {
	return func(c echo.Context) error {
		var recs []*engine.PatientRecord
		if err := c.Bind(&recs); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "malformed patient records"})
		}
		estimates, err := service.CalculateBatch(c.Param("name"), selectorParams(c), recs)
		if err != nil {
			return calculationError(c, err)
		}
		return c.JSON(http.StatusOK, estimates)
	}
}

func selectorParams(c echo.Context) map[string]string {
	params := make(map[string]string)
	for _, name := range selectorParamNames {
		if value := c.QueryParam(name); value != "" {
			params[name] = value
		}
	}
	return params
}

func calculationError(c echo.Context, err error) error {
	switch {
	case errors.Cause(err) == ErrUnknownScore:
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	case engine.IsInvalidInput(err):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	default:
		return err
	}
}
