package main

type Name string
