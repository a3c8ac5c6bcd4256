// Package state mantiene el conjunto de datos de la tienda en memoria y serializa
// todas las mutaciones a través de un único goroutine escritor.
package state

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/gestion-pro/internal/domain/entity"
	"github.com/jhoicas/gestion-pro/internal/domain/repository"
)

// ErrClosed se devuelve si se envía un comando después de Close.
var ErrClosed = errors.New("estado de la aplicación cerrado")

// Data colecciones en memoria. Solo se accede dentro de Do.
type Data struct {
	Products       []entity.Product
	Sales          []entity.Sale
	PaymentMethods []string
	Cart           entity.Cart
}

// Repository persistencia que necesita el arranque.
type Repository interface {
	repository.ProductRepository
	repository.SaleRepository
	repository.PreferencesRepository
}

type command struct {
	fn    func(*Data) error
	reply chan error
}

// Store dueño único de Data.
type Store struct {
	data Data
	cmds chan command
	quit chan struct{}
	done chan struct{}
}

// New arranca el goroutine escritor con los datos iniciales.
func New(initial Data) *Store {
	s := &Store{
		data: initial,
		cmds: make(chan command),
		quit: make(chan struct{}),
		done: make(chan struct{}),
	}
	go s.loop()
	return s
}

func (s *Store) loop() {
	defer close(s.done)
	for {
		select {
		case c := <-s.cmds:
			c.reply <- s.run(c.fn)
		case <-s.quit:
			return
		}
	}
}

func (s *Store) run(fn func(*Data) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic en comando de estado: %v", r)
		}
	}()
	return fn(&s.data)
}

// Do ejecuta fn con acceso exclusivo a Data. fn no debe llamar a Do (deadlock) ni
// retener referencias a los slices fuera de su ejecución.
// Una vez aceptado el comando se espera su resultado aunque ctx se cancele.
func (s *Store) Do(ctx context.Context, fn func(*Data) error) error {
	c := command{fn: fn, reply: make(chan error, 1)}
	select {
	case s.cmds <- c:
	case <-ctx.Done():
		return ctx.Err()
	case <-s.quit:
		return ErrClosed
	}
	return <-c.reply
}

// Close detiene el escritor y espera a que termine.
func (s *Store) Close() {
	select {
	case <-s.quit:
	default:
		close(s.quit)
	}
	<-s.done
}

// Bootstrap carga los datos guardados. Un catálogo vacío se siembra con los productos
// iniciales y, si nunca se guardaron métodos de pago, se guardan los por defecto.
func Bootstrap(ctx context.Context, repo Repository, now time.Time) (Data, error) {
	products, err := repo.GetProducts(ctx)
	if err != nil {
		return Data{}, fmt.Errorf("cargar productos: %w", err)
	}
	if len(products) == 0 {
		products = entity.InitialProducts(now)
		if err := repo.SaveProducts(ctx, products); err != nil {
			return Data{}, fmt.Errorf("sembrar productos: %w", err)
		}
	}

	sales, err := repo.GetSales(ctx)
	if err != nil {
		return Data{}, fmt.Errorf("cargar ventas: %w", err)
	}

	methods, err := repo.GetPaymentMethods(ctx)
	if err != nil {
		return Data{}, fmt.Errorf("cargar métodos de pago: %w", err)
	}
	if methods == nil {
		methods = entity.DefaultPaymentMethods()
		if err := repo.SavePaymentMethods(ctx, methods); err != nil {
			return Data{}, fmt.Errorf("guardar métodos de pago: %w", err)
		}
	}

	return Data{Products: products, Sales: sales, PaymentMethods: methods}, nil
}

// CloneProducts copia el slice para entregarlo fuera del escritor.
func CloneProducts(in []entity.Product) []entity.Product {
	return append([]entity.Product(nil), in...)
}

// CloneSales copia el slice (y las líneas de cada venta).
func CloneSales(in []entity.Sale) []entity.Sale {
	out := make([]entity.Sale, len(in))
	for i, s := range in {
		s.Items = append([]entity.SaleItem(nil), s.Items...)
		out[i] = s
	}
	return out
}

// CloneStrings copia una lista de textos.
func CloneStrings(in []string) []string {
	return append([]string(nil), in...)
}

// FindProduct devuelve el índice del producto o -1.
func FindProduct(products []entity.Product, id string) int {
	for i, p := range products {
		if p.ID == id {
			return i
		}
	}
	return -1
}
