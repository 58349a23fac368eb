package repository

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Taeppir/Link/internal/pkg/logger"
	"github.com/Taeppir/Link/internal/pkg/models"
)

// Port list CSV columns
const (
	columnIndex = "World Port Index Number"
	columnName  = "Main Port Name"
	columnLat   = "Latitude"
	columnLon   = "Longitude"
)

// PortRepo serves the static port list from memory
type PortRepo struct {
	ports []models.Port
}

// NewPortRepo loads the port list from a CSV file. A missing or unreadable
// file yields an empty list; the error is logged.
func NewPortRepo(path string) *PortRepo {
	f, err := os.Open(path)
	if err != nil {
		logger.Error("Port list not found", logger.String("path", path), logger.Err(err))
		return &PortRepo{}
	}
	defer f.Close()

	ports, err := ReadPorts(f)
	if err != nil {
		logger.Error("Failed to read port list", logger.String("path", path), logger.Err(err))
	}
	logger.Info("Port list loaded", logger.String("path", path), logger.Int("ports", len(ports)))
	return &PortRepo{ports: ports}
}

// NewPortRepoFromList creates a repository over an in-memory list
func NewPortRepoFromList(ports []models.Port) *PortRepo {
	return &PortRepo{ports: ports}
}

// ReadPorts parses a port list CSV. Rows with unparsable coordinates are skipped.
func ReadPorts(r io.Reader) ([]models.Port, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))] = i
	}
	for _, required := range []string{columnIndex, columnName, columnLat, columnLon} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("missing column %q", required)
		}
	}

	var ports []models.Port
	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return ports, fmt.Errorf("line %d: %w", line, err)
		}

		field := func(name string) string {
			i := columns[name]
			if i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}

		lat, latErr := strconv.ParseFloat(field(columnLat), 64)
		lon, lonErr := strconv.ParseFloat(field(columnLon), 64)
		if latErr != nil || lonErr != nil {
			logger.Warn("Skipping port with invalid coordinates",
				logger.Int("line", line),
				logger.String("name", field(columnName)))
			continue
		}

		ports = append(ports, models.Port{
			Index: field(columnIndex),
			Name:  field(columnName),
			Lat:   lat,
			Lon:   lon,
		})
	}
	return ports, nil
}

// Search returns ports whose name or index contains query, ignoring case.
// An empty query returns every port.
func (r *PortRepo) Search(ctx context.Context, query string) ([]models.Port, error) {
	keyword := strings.ToLower(strings.TrimSpace(query))

	result := make([]models.Port, 0, len(r.ports))
	for _, p := range r.ports {
		if strings.Contains(strings.ToLower(p.Name), keyword) || strings.Contains(strings.ToLower(p.Index), keyword) {
			result = append(result, p)
		}
	}
	return result, nil
}
