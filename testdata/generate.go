package main

import (
	"log"
	"os"

	"github.com/parquet-go/parquet-go"
)

type Measurement struct {
	Day       int64   `parquet:"Metadata_Day"`
	Condition string  `parquet:"Metadata_Condition"`
	Count     float64 `parquet:"Count_Cells"`
}

func main() {
	measurements := []Measurement{
		{Day: 1, Condition: "Control", Count: 118},
		{Day: 1, Condition: "Control", Count: 131},
		{Day: 1, Condition: "Treated", Count: 74},
		{Day: 1, Condition: "Treated", Count: 81},
		{Day: 2, Condition: "Control", Count: 205},
		{Day: 2, Condition: "Treated", Count: 96},
	}

	file, err := os.Create("measurements.parquet")
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	writer := parquet.NewGenericWriter[Measurement](file)
	defer writer.Close()

	if _, err := writer.Write(measurements); err != nil {
		log.Fatal(err)
	}

	log.Println("Generated measurements.parquet with 6 rows")
}
