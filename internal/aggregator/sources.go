package aggregator

import (
	"cryptonews/internal/config"
	"cryptonews/pkg/news"
)

// ClientsFromConfig returns NewsData.io and CoinMarketCap first, then any
// extra source whose API key is set.
func ClientsFromConfig(cfg *config.Config) []news.NewsClient {
	timeout := cfg.HTTPClientTimeout

	clients := []news.NewsClient{
		news.NewNewsDataClient(cfg.NewsDataAPIKey, timeout),
		news.NewCoinMarketCapClient(cfg.CoinMarketCapAPIKey, timeout),
	}

	if cfg.FinnhubAPIKey != "" {
		clients = append(clients, news.NewFinnHubClient(cfg.FinnhubAPIKey, timeout))
	}
	if cfg.AlphaVantageAPIKey != "" {
		clients = append(clients, news.NewAlphaVantageClient(cfg.AlphaVantageAPIKey, timeout))
	}
	if cfg.MassiveAPIKey != "" {
		clients = append(clients, news.NewMassiveClient(cfg.MassiveAPIKey, timeout))
	}

	return clients
}
