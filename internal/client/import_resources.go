package client

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-vault-wrench/models"
)

// importColumns is the field count of one resource line:
// host, username, password, description, product.
const importColumns = 5

// ParseResourceImport reads a tab-separated resource listing and returns one
// resource per line. The first line is a header and is skipped; every other
// line must hold exactly five fields (host, username, password, description,
// product). The given tags are attached to every parsed resource.
func ParseResourceImport(r io.Reader, tags []string) ([]models.DecryptedResource, error) {
	scanner := bufio.NewScanner(r)

	var resources []models.DecryptedResource
	for lineno := 1; scanner.Scan(); lineno++ {
		if lineno == 1 {
			continue // header
		}

		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		parts := strings.Split(line, "\t")
		if len(parts) != importColumns {
			return nil, fmt.Errorf("line %d: expected %d tab-separated fields, got %d", lineno, importColumns, len(parts))
		}

		host, username, password, description, product := parts[0], parts[1], parts[2], parts[3], parts[4]
		if strings.TrimSpace(product) == "" {
			return nil, fmt.Errorf("line %d: the product column names the resource and must not be empty", lineno)
		}
		if password == "" {
			return nil, fmt.Errorf("line %d: empty password", lineno)
		}

		resources = append(resources, models.DecryptedResource{
			Resource: models.Resource{
				Name:        product,
				URI:         host,
				Username:    username,
				Description: description,
				Tags:        tags,
			},
			Secret: password,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read import file: %w", err)
	}

	return resources, nil
}
