package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math/big"
	"os"
)

// defaults holds the values bound for scalars the document omits.
// Collections are not listed here: they always default to empty.
var defaults = Configuration{
	SessionMaxAgeHours: DefaultSessionMaxAgeHours,
	ConfigFile:         DefaultConfigFile,
}

// rawConfiguration mirrors the settings document. Pointers mark the scalars
// whose absence must be told apart from their zero value.
// SessionMaxAgeHours is kept raw so integral numbers written as 12.0 or 1e1
// bind like 12 and 10.
type rawConfiguration struct {
	ProxyURL             string                   `json:"proxyUrl"`
	CookieSecret         string                   `json:"cookieSecret"`
	SessionMaxAgeHours   json.RawMessage          `json:"sessionMaxAgeHours"`
	API                  Options                  `json:"api"`
	CommitConfig         Options                  `json:"commitConfig"`
	AttestationConfig    Options                  `json:"attestationConfig"`
	Domains              Options                  `json:"domains"`
	PrivateOrganizations []string                 `json:"privateOrganizations"`
	URLShortener         string                   `json:"urlShortener"`
	ContactEmail         string                   `json:"contactEmail"`
	CSRFProtection       bool                     `json:"csrfProtection"`
	Plugins              []string                 `json:"plugins"`
	AuthorisedList       []AuthorisedRepo         `json:"authorisedList"`
	Sink                 []DatabaseSink           `json:"sink"`
	Authentication       []AuthenticationProvider `json:"authentication"`
	TempPassword         *rawTempPasswordPolicy   `json:"tempPassword"`
}

type rawTempPasswordPolicy struct {
	SendEmail   bool    `json:"sendEmail"`
	EmailConfig Options `json:"emailConfig"`
}

// Load binds a settings document into a [Configuration].
//
// Absent scalars take the values in the defaults table, absent lists and
// objects become empty. Sink and authentication entries are copied as they
// are: their type tag is never inspected and their option bags keep the
// decoded JSON values untouched.
func Load(document []byte) (*Configuration, error) {
	var raw rawConfiguration
	if err := decodeDocument(document, &raw); err != nil {
		return nil, err
	}

	cfg, err := bind(raw)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFile reads the document at path and binds it with [Load].
// The returned configuration remembers path in ConfigFile.
func LoadFile(path string) (*Configuration, error) {
	document, err := readConfigFile(path)
	if err != nil {
		return nil, err
	}

	cfg, err := Load(document)
	if err != nil {
		return nil, fmt.Errorf("error loading %s: %w", path, err)
	}
	cfg.ConfigFile = path

	return cfg, nil
}

func readConfigFile(path string) ([]byte, error) {
	document, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: config file %s doesn't exist", ErrConfigFileMissing, path)
	}
	if err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}

	return document, nil
}

// decodeDocument decodes exactly one JSON value from document into v.
// Numbers inside opaque values stay json.Number.
func decodeDocument(document []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(document))
	dec.UseNumber()

	if err := dec.Decode(v); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return fmt.Errorf("%w: field %q: %w", ErrConfigBind, typeErr.Field, err)
		}
		return fmt.Errorf("%w: %w", ErrConfigParse, err)
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: unexpected data after top-level value", ErrConfigParse)
	}

	return nil
}

func bind(raw rawConfiguration) (*Configuration, error) {
	cfg := &Configuration{
		ProxyURL:             raw.ProxyURL,
		CookieSecret:         raw.CookieSecret,
		SessionMaxAgeHours:   defaults.SessionMaxAgeHours,
		API:                  orEmpty(raw.API),
		CommitConfig:         orEmpty(raw.CommitConfig),
		AttestationConfig:    orEmpty(raw.AttestationConfig),
		Domains:              orEmpty(raw.Domains),
		PrivateOrganizations: orEmptyList(raw.PrivateOrganizations),
		URLShortener:         raw.URLShortener,
		ContactEmail:         raw.ContactEmail,
		CSRFProtection:       raw.CSRFProtection,
		Plugins:              orEmptyList(raw.Plugins),
		AuthorisedList:       orEmptyList(raw.AuthorisedList),
		Sink:                 make([]DatabaseSink, 0, len(raw.Sink)),
		Authentication:       make([]AuthenticationProvider, 0, len(raw.Authentication)),
		TempPassword:         TempPasswordPolicy{EmailConfig: Options{}},
		ConfigFile:           defaults.ConfigFile,
	}

	hours, err := bindSessionMaxAge(raw.SessionMaxAgeHours)
	if err != nil {
		return nil, err
	}
	if hours != 0 {
		cfg.SessionMaxAgeHours = hours
	}

	for _, sink := range raw.Sink {
		sink.Options = orEmpty(sink.Options)
		sink.Params = orEmpty(sink.Params)
		cfg.Sink = append(cfg.Sink, sink)
	}

	for _, provider := range raw.Authentication {
		provider.Options = orEmpty(provider.Options)
		cfg.Authentication = append(cfg.Authentication, provider)
	}

	if raw.TempPassword != nil {
		cfg.TempPassword = TempPasswordPolicy{
			SendEmail:   raw.TempPassword.SendEmail,
			EmailConfig: orEmpty(raw.TempPassword.EmailConfig),
		}
	}

	return cfg, nil
}

// bindSessionMaxAge returns 0 when the value is absent or null. Any JSON
// number with an integral value is accepted; it must lie in
// 1..[MaxSessionMaxAgeHours].
func bindSessionMaxAge(value json.RawMessage) (int, error) {
	if len(value) == 0 || string(value) == "null" {
		return 0, nil
	}

	dec := json.NewDecoder(bytes.NewReader(value))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return 0, fmt.Errorf("%w: field \"sessionMaxAgeHours\": %w", ErrConfigBind, err)
	}
	number, ok := v.(json.Number)
	if !ok {
		return 0, fmt.Errorf("%w: field \"sessionMaxAgeHours\": expected a number, got %s", ErrConfigBind, value)
	}

	hours, ok := new(big.Rat).SetString(number.String())
	if !ok || !hours.IsInt() {
		return 0, fmt.Errorf("%w: field \"sessionMaxAgeHours\": %s is not an integer", ErrConfigBind, number)
	}
	if hours.Sign() <= 0 || hours.Cmp(maxSessionMaxAge) > 0 {
		return 0, fmt.Errorf("%w: got %s", ErrInvalidSessionMaxAge, number)
	}

	return int(hours.Num().Int64()), nil
}

var maxSessionMaxAge = new(big.Rat).SetInt64(MaxSessionMaxAgeHours)

func orEmpty(o Options) Options {
	if o == nil {
		return Options{}
	}
	return o
}

func orEmptyList[T any](list []T) []T {
	if list == nil {
		return []T{}
	}
	return list
}
