package cli_test

import (
	"testing"

	mapstructure "github.com/go-viper/mapstructure/v2"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/temirov/journalclub/cmd/cli"
	"github.com/temirov/journalclub/internal/pdfs"
)

const (
	expectedEmbeddedConfigurationTypeConstant = "yaml"
	expectedSiteURLConstant                   = "https://max.github.io"
	expectedSiteBaseConstant                  = "/efficient-nlp"
)

func TestEmbeddedDefaultConfigurationMatchesDefaults(testInstance *testing.T) {
	configurationData, configurationType := cli.EmbeddedDefaultConfiguration()
	require.Equal(testInstance, expectedEmbeddedConfigurationTypeConstant, configurationType)
	require.NotEmpty(testInstance, configurationData)

	rawConfiguration := map[string]any{}
	require.NoError(testInstance, yaml.Unmarshal(configurationData, &rawConfiguration))

	var decodedConfiguration cli.ApplicationConfiguration
	decoder, decoderError := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &decodedConfiguration,
		ErrorUnused: true,
	})
	require.NoError(testInstance, decoderError)
	require.NoError(testInstance, decoder.Decode(rawConfiguration))

	require.Equal(testInstance, "info", decodedConfiguration.Common.LogLevel)
	require.Equal(testInstance, "structured", decodedConfiguration.Common.LogFormat)
	require.Equal(testInstance, pdfs.DefaultCommandConfiguration(), decodedConfiguration.Tools.PDFs)
	require.Equal(testInstance, cli.SiteConfiguration{
		URL:    expectedSiteURLConstant,
		Base:   expectedSiteBaseConstant,
		Output: "static",
		Assets: "assets",
	}, decodedConfiguration.Site)
}
