package contracts

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/schemas"
)

// Request contract names as produced by generateKeyFromPath.
const (
	RegisterUserRequest   = "RegisterUserRequest"
	LoginUserRequest      = "LoginUserRequest"
	CreatePropertyRequest = "CreatePropertyRequest"
	UpdatePropertyRequest = "UpdatePropertyRequest"
	CreateInquiryRequest  = "CreateInquiryRequest"

	CurrentVersion = "1.0.0"
)

var compiledSchemas = make(map[string]*jsonschema.Schema)

func init() {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true

	// Register every schema as a resource first so `$ref` between schemas
	// resolves during compilation.
	err := fs.WalkDir(schemas.SchemasFS, "requests", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".json") {
			file, err := schemas.SchemasFS.Open(path)
			if err != nil {
				return fmt.Errorf("failed to open schema %s: %w", path, err)
			}
			addErr := compiler.AddResource(path, file)
			file.Close()
			if addErr != nil {
				log.Fatalf("failed to add schema resource %s: %v", path, addErr)
			}
		}
		return nil
	})
	if err != nil {
		log.Fatalf("error walking and adding schema resources: %v", err)
	}

	// Second pass compiles and registers each schema under its key.
	err = fs.WalkDir(schemas.SchemasFS, "requests", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".json") {
			schema, err := compiler.Compile(path)
			if err != nil {
				log.Printf("WARNING: could not compile schema %s: %v. Skipping.", path, err)
				return nil
			}

			key := generateKeyFromPath(path)
			compiledSchemas[key] = schema
		}
		return nil
	})
	if err != nil {
		log.Fatalf("error walking and compiling schemas: %v", err)
	}
}

// generateKeyFromPath turns a path like "requests/create-property/v1.json"
// into a key like "CreatePropertyRequest/1.0.0".
func generateKeyFromPath(path string) string {
	trimmedPath := strings.TrimPrefix(path, "requests/")
	trimmedPath = strings.TrimSuffix(trimmedPath, ".json")

	parts := strings.Split(trimmedPath, "/")
	if len(parts) != 2 {
		return ""
	}

	caser := cases.Title(language.English)

	nameParts := strings.Split(parts[0], "-")
	var nameBuilder strings.Builder
	for _, p := range nameParts {
		nameBuilder.WriteString(caser.String(p))
	}
	nameBuilder.WriteString("Request")
	requestName := nameBuilder.String()

	version := strings.Replace(parts[1], "v", "", 1) + ".0.0"

	return fmt.Sprintf("%s/%s", requestName, version)
}

// ValidateRequest checks a raw request body against the registered schema.
func ValidateRequest(requestType, requestVersion string, body []byte) error {
	key := fmt.Sprintf("%s/%s", requestType, requestVersion)
	schema, ok := compiledSchemas[key]
	if !ok {
		return fmt.Errorf("schema for request '%s' version '%s' not found", requestType, requestVersion)
	}

	var v interface{}
	if err := json.Unmarshal(body, &v); err != nil {
		return fmt.Errorf("request body is not a valid JSON: %w", err)
	}

	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("JSON schema validation failed: %w", err)
	}

	return nil
}
