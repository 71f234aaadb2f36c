package controller

import (
	"bufio"
	"fmt"
	"gitlab.com/open-soft/go-crypto-dashboard/src/model"
	"gitlab.com/open-soft/go-crypto-dashboard/src/service"
	"io"
	"log"
)

const MessageFetching = "Fetching data... Please wait."
const MessageMenuHeader = "\nChoose Visualization Option:"
const MessagePrompt = "Enter choice (1-4): "
const MessageFarewell = "Exiting. Thanks for using the dashboard!"
const MessageInvalidChoice = "Invalid choice, try again."

type menuHandler func(snapshot model.MarketSnapshot) (string, error)

type DashboardController struct {
	MarketService service.MarketServiceInterface
	ChartService  service.ChartServiceInterface
	Input         io.Reader
	Output        io.Writer
}

// Run fetches the market snapshot once and serves the menu until exit or end of input.
func (d *DashboardController) Run() error {
	d.println(MessageFetching)

	snapshot, err := d.MarketService.Load()
	if err != nil {
		return err
	}

	handlers := d.getHandlers()
	scanner := bufio.NewScanner(d.Input)

	for {
		d.printMenu()

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return err
			}

			log.Println("Input is closed, leaving the menu")
			return nil
		}

		choice := model.ParseMenuChoice(scanner.Text())

		if choice == model.MenuExit {
			d.println(MessageFarewell)
			return nil
		}

		handler, exist := handlers[choice]
		if !exist {
			d.println(MessageInvalidChoice)
			continue
		}

		path, err := handler(snapshot)
		if err != nil {
			return err
		}

		d.println(fmt.Sprintf("Chart saved to %s", path))
	}
}

func (d *DashboardController) getHandlers() map[model.MenuChoice]menuHandler {
	return map[model.MenuChoice]menuHandler{
		model.MenuPriceTrend: func(snapshot model.MarketSnapshot) (string, error) {
			return d.ChartService.PlotPriceComparison(snapshot.Bitcoin, snapshot.Ethereum)
		},
		model.MenuTradingVolume: func(snapshot model.MarketSnapshot) (string, error) {
			return d.ChartService.PlotVolumeComparison(snapshot.Bitcoin, snapshot.Ethereum)
		},
		model.MenuMarketCapPie: func(snapshot model.MarketSnapshot) (string, error) {
			return d.ChartService.PlotMarketCapPie(snapshot.Global)
		},
	}
}

func (d *DashboardController) printMenu() {
	d.println(MessageMenuHeader)
	for _, option := range model.MenuOptions() {
		d.println(fmt.Sprintf("%s. %s", option.Choice, option.Title))
	}
	_, _ = fmt.Fprint(d.Output, MessagePrompt)
}

func (d *DashboardController) println(message string) {
	_, _ = fmt.Fprintln(d.Output, message)
}
