// Package testutil provides test utilities and fixtures for unit tests.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.yaml.in/yaml/v4"
)

// PetstoreYAML is an OpenAPI 3.0 document with known typos:
//   - "sampel" and "naem" in descriptions
//   - "listPetz" (operationId), "page_sise" (parameter), "petNaem" (property)
//
// "petz" is ignored through the x-oasspell extension. Examples and
// extensions carry text that must never be checked.
const PetstoreYAML = `openapi: 3.0.3
info:
  title: Petstore API
  description: A sampel API for <code>petz</code> owners.
  version: 1.0.0
tags:
  - name: pets
    description: Everything about your pets
paths:
  /pets:
    get:
      operationId: listPetz
      summary: List all pets
      parameters:
        - name: page_sise
          in: query
          description: How many items to return
          schema:
            type: integer
            example: 10
      responses:
        "200":
          description: A paged array of pets
components:
  schemas:
    Pet:
      type: object
      properties:
        petNaem:
          type: string
          description: The naem of the pet
          example: Fluffy teh cat
      x-owner: platfrom team
x-oasspell:
  ignore:
    - petz
`

// PetstoreInstanceCount is the number of text instances in PetstoreYAML.
const PetstoreInstanceCount = 12

// WeatherSmithyJSON is a Smithy JSON AST model with known typos:
//   - "wether" in the namespace
//   - "forcast" and "citty" in documentation
//   - "cityIdd" (member name)
//   - "Get a forcast" in the title of a structured examples trait
//
// Its metadata configures the SpellCheck validator to ignore "forecst" and
// to offer at most two suggestions.
const WeatherSmithyJSON = `{
  "smithy": "2.0",
  "metadata": {
    "validators": [
      {
        "name": "SpellCheck",
        "configuration": {
          "ignore": ["forecst"],
          "limit": 2
        }
      }
    ]
  },
  "shapes": {
    "example.wether#GetForecast": {
      "type": "operation",
      "input": {"target": "example.wether#GetForecastInput"},
      "traits": {
        "smithy.api#documentation": "Returns the <b>forcast</b> for a <i>citty</i>.",
        "smithy.api#http": {"method": "GET", "uri": "/forecst"},
        "smithy.api#examples": [
          {"title": "Get a forcast", "documentation": "Example request"}
        ]
      }
    },
    "example.wether#GetForecastInput": {
      "type": "structure",
      "members": {
        "cityIdd": {
          "target": "smithy.api#String",
          "traits": {
            "smithy.api#required": {},
            "smithy.api#documentation": "The city identifier."
          }
        }
      }
    },
    "example.wether#CityIds": {
      "type": "list",
      "member": {
        "target": "smithy.api#String",
        "traits": {"smithy.api#documentation": "A city id."}
      }
    },
    "example.wether#Alias": {
      "type": "apply",
      "traits": {"example.traits#note": "Applied elsewhere"}
    }
  }
}
`

// WeatherInstanceCount is the number of text instances in WeatherSmithyJSON.
const WeatherInstanceCount = 11

// WriteTemp writes content to name inside a temporary directory and returns
// the file path. The file is removed when the test completes (via t.TempDir).
func WriteTemp(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write temporary file: %v", err)
	}
	return path
}

// WriteDictionary writes a word list with one word per line and returns its
// path.
func WriteDictionary(t *testing.T, words ...string) string {
	t.Helper()
	return WriteTemp(t, "words.txt", strings.Join(words, "\n")+"\n")
}

// WriteTempYAML marshals a value to YAML and writes it to a temporary file.
// Returns the path to the temporary file.
func WriteTempYAML(t *testing.T, doc any) string {
	t.Helper()

	data, err := yaml.Marshal(doc)
	if err != nil {
		t.Fatalf("Failed to marshal document to YAML: %v", err)
	}
	return WriteTemp(t, "test.yaml", string(data))
}

// WriteTempJSON marshals a value to indented JSON and writes it to a
// temporary file. Returns the path to the temporary file.
func WriteTempJSON(t *testing.T, doc any) string {
	t.Helper()

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal document to JSON: %v", err)
	}
	return WriteTemp(t, "test.json", string(data))
}
