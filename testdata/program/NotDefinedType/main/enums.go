package main

type Fruit int
