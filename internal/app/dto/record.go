package dto

import (
	"strconv"
)

// RecordKind partitions the store and fills the CSV "tipo" column.
type RecordKind string

const (
	KindArrival   RecordKind = "chegada"
	KindDeparture RecordKind = "partida"
)

const (
	DefaultStatus     = "Scheduled"
	DefaultFrequencia = 1
	ExportVersion     = "1.0"

	// ISOTimestampLayout is the UTC millisecond layout of dataCadastro and
	// dataExport.
	ISOTimestampLayout = "2006-01-02T15:04:05.000Z"
)

// FlightRecord is the canonical arrival/departure record. JSON names are the
// persisted schema shared with the export and snapshot files.
type FlightRecord struct {
	Companhia         string  `json:"companhia" validate:"required"`
	Cidade            string  `json:"cidade" validate:"required"`
	ICAO              string  `json:"icao"`
	Pais              string  `json:"pais"`
	Voo               string  `json:"voo"`
	Horario           string  `json:"horario"`
	Aeronave          string  `json:"aeronave"`
	Status            string  `json:"status"`
	TPS               string  `json:"tps"`
	HorarioConfirmado *string `json:"horarioConfirmado"`
	Frequencia        int     `json:"frequencia"`
	DataCadastro      string  `json:"dataCadastro"`
}

// Field returns the value of a canonical string field by its JSON name.
func (r FlightRecord) Field(name string) string {
	switch name {
	case "companhia":
		return r.Companhia
	case "cidade":
		return r.Cidade
	case "icao":
		return r.ICAO
	case "pais":
		return r.Pais
	case "voo":
		return r.Voo
	case "horario":
		return r.Horario
	case "aeronave":
		return r.Aeronave
	case "status":
		return r.Status
	case "tps":
		return r.TPS
	case "frequencia":
		return strconv.Itoa(r.Frequencia)
	case "dataCadastro":
		return r.DataCadastro
	}

	return ""
}

// RawRecord is one imported row before normalization: arbitrary keys mapped
// to JSON scalars (string, float64, bool or nil).
type RawRecord map[string]any

// ExportDocument is the JSON export shape, also used as store snapshot.
type ExportDocument struct {
	Chegadas   []FlightRecord `json:"chegadas"`
	Partidas   []FlightRecord `json:"partidas"`
	DataExport string         `json:"dataExport"`
	Versao     string         `json:"versao"`
}
