package ticket_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"comnet/internal/repositories"
	"comnet/internal/services"
)

var Module = fx.Provide(
	provideTicketService, provideTicketRepo)

func provideTicketRepo(db *gorm.DB) repositories.ITicketRepository {
	return repositories.NewTicketRepository(db)
}

func provideTicketService(ticketRepo repositories.ITicketRepository) services.TicketServiceInterface {
	return services.NewTicketService(ticketRepo)
}
